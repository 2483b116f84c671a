package documentsHandler

import (
	documentsService "ProjectKYC/internal/api/documents/service"
	"ProjectKYC/internal/middleware"
	"ProjectKYC/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DocumentHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	documentService documentsService.IDocumentService
	utils           utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ds documentsService.IDocumentService,
	utils utils.IUtils,
) *DocumentHandler {
	return &DocumentHandler{
		log:             log,
		validator:       validator,
		middleware:      middleware,
		documentService: ds,
		utils:           utils,
	}
}

func (h *DocumentHandler) Start(srv fiber.Router) {
	docs := srv.Group("/documents")
	docs.Post("/process", h.middleware.NewRateLimiter, h.ProcessDocument)
	docs.Get("/health", h.HealthCheck)
	docs.Get("/info", h.GetAPIInfo)
}
