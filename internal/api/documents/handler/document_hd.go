package documentsHandler

import (
	"ProjectKYC/internal/api/documents"
	contextPkg "ProjectKYC/pkg/context"
	"ProjectKYC/pkg/handlerUtil"
	"ProjectKYC/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/net/context"
)

// requestTimeout bounds one extraction request end to end; the bridge
// applies the same hard deadline around the backend call itself.
const requestTimeout = 300 * time.Second

func (h *DocumentHandler) ProcessDocument(ctx *fiber.Ctx) error {
	startedAt := time.Now()
	requestID := uuid.New().String()
	traceID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": traceID,
		"path":       ctx.Path(),
	}).Debug("Processing document extraction request")

	opts := documents.ProcessingOptions{
		ExtractorMode: ctx.FormValue("extractor_mode", documents.DefaultProcessingMode),
	}
	if err := h.validator.Struct(opts); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return errHandler.Handle(ctx, requestID, documents.ErrEmptyFile, ctx.Path(), "read_form_file")
	}

	h.log.WithFields(log.Fields{
		"request_id": traceID,
		"path":       ctx.Path(),
		"file_name":  file.Filename,
		"file_size":  file.Size,
	}).Debug("Processing file upload")

	if err := h.utils.ValidateDocumentFile(file); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "validate_document_file")
	}

	mimeType, err := h.utils.ResolveMimeType(file.Header.Get("Content-Type"), file.Filename)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "resolve_mime_type")
	}

	content, err := h.utils.ReadMultipartFile(file)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "read_file")
	}
	if len(content) == 0 {
		return errHandler.Handle(ctx, requestID, documents.ErrEmptyFile, ctx.Path(), "read_file")
	}

	information, summary, err := h.documentService.ProcessDocument(c, content, mimeType, startedAt)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "process_document")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx, requestID)
	default:
		h.log.WithFields(log.Fields{
			"request_id":         traceID,
			"path":               ctx.Path(),
			"successful_pages":   summary.SuccessfulPages,
			"average_confidence": summary.AverageConfidence,
		}).Info("Document extraction successful")

		return errHandler.HandleSuccess(ctx, fiber.StatusOK, documents.ProcessResponse{
			RequestID:            requestID,
			Filename:             file.Filename,
			ProcessingMode:       opts.ExtractorMode,
			ExtractedInformation: *information,
			Summary:              *summary,
			Timestamp:            time.Now().UTC(),
		})
	}
}

func (h *DocumentHandler) HealthCheck(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(documents.HealthResponse{
		Status:    "healthy",
		Version:   documents.APIVersion,
		Timestamp: time.Now().UTC(),
	})
}

func (h *DocumentHandler) GetAPIInfo(ctx *fiber.Ctx) error {
	processor := h.documentService.ProcessorInfo()

	return ctx.Status(fiber.StatusOK).JSON(documents.InfoResponse{
		APIName:     documents.APIName,
		Version:     documents.APIVersion,
		Description: documents.APIDescription,
		CustomExtractor: documents.ExtractorInfo{
			ID:          processor.ID,
			Version:     processor.Version,
			Name:        processor.Name,
			Description: processor.Description,
		},
		SupportedFields: documents.SupportedFields{
			PageOne: documents.PageOneFieldNames,
			PageTwo: documents.PageTwoFieldNames,
		},
	})
}
