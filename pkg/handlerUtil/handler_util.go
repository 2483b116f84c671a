package handlerUtil

import (
	"ProjectKYC/internal/api/documents"
	"ProjectKYC/pkg/docai"
	"ProjectKYC/pkg/log"
	"ProjectKYC/pkg/response"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle maps a pipeline error onto the structured error body. Backend
// failures all surface as PROCESSING_ERROR with a coarse error_type
// detail; internal error types never leak further than that.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	if errors.Is(err, documents.ErrInvalidFileType) {
		h.logger.WithFields(fields).Warn("Rejected unsupported file type")
		return h.respondError(c, fiber.StatusBadRequest, requestID, "INVALID_FILE_TYPE", err.Error(), detailsOf(err))
	}

	if errors.Is(err, documents.ErrMissingContentType) {
		h.logger.WithFields(fields).Warn("Missing content type")
		return h.respondError(c, fiber.StatusBadRequest, requestID, "MISSING_CONTENT_TYPE", err.Error(), detailsOf(err))
	}

	if errors.Is(err, documents.ErrEmptyFile) {
		h.logger.WithFields(fields).Warn("Rejected empty file")
		return h.respondError(c, fiber.StatusBadRequest, requestID, "EMPTY_FILE", err.Error(), detailsOf(err))
	}

	if errors.Is(err, documents.ErrFileTooLarge) {
		h.logger.WithFields(fields).Warn("Rejected oversized file")
		return h.respondError(c, fiber.StatusRequestEntityTooLarge, requestID, "FILE_TOO_LARGE", err.Error(), detailsOf(err))
	}

	if errors.Is(err, docai.ErrNotInitialized) {
		h.logger.WithFields(fields).Error("Extraction client used before initialization")
		return h.respondError(c, fiber.StatusInternalServerError, requestID, "PROCESSING_ERROR", "Failed to process document",
			map[string]interface{}{"error_type": "not_initialized"})
	}

	if errors.Is(err, context.DeadlineExceeded) {
		h.logger.WithFields(fields).Error("Document processing timed out")
		return h.respondError(c, fiber.StatusInternalServerError, requestID, "PROCESSING_ERROR", "Failed to process document",
			map[string]interface{}{"error_type": "deadline_exceeded"})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return h.respondError(c, respErr.Code, requestID, "PROCESSING_ERROR", err.Error(), respErr.Details)
	}

	h.logger.WithFields(fields).Error("Unexpected error")
	return h.respondError(c, fiber.StatusInternalServerError, requestID, "PROCESSING_ERROR", "Failed to process document",
		map[string]interface{}{"error_type": fmt.Sprintf("%T", err)})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return h.respondError(c, fiber.StatusBadRequest, requestID, "VALIDATION_ERROR", "Request validation failed",
		map[string]interface{}{"validation_errors": err.Error()})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx, requestID string) error {
	return h.respondError(c, fiber.StatusRequestTimeout, requestID, "PROCESSING_ERROR", "Request timed out", nil)
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}

func (h *ErrorHandler) respondError(c *fiber.Ctx, status int, requestID, code, message string, details map[string]interface{}) error {
	return c.Status(status).JSON(documents.ErrorResponse{
		Error: documents.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	})
}

func detailsOf(err error) map[string]interface{} {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		return respErr.Details
	}
	return nil
}
