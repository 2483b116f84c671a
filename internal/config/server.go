package config

import (
	documentsHandler "ProjectKYC/internal/api/documents/handler"
	documentsService "ProjectKYC/internal/api/documents/service"
	"ProjectKYC/internal/middleware"
	"ProjectKYC/pkg/docai"
	"ProjectKYC/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	docAI      docai.IDocAI
	handlers   []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.docAI == nil {
		return nil, fmt.Errorf("document AI client is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithDocAI constructs the extraction client and brings its worker
// pool to Ready. The pool is released again in Shutdown.
func WithDocAI() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before the document AI client")
		}

		client, err := docai.New(s.log)
		if err != nil {
			s.log.Errorf("Failed to create document AI client: %v", err)
			return fmt.Errorf("failed to create document AI client: %w", err)
		}

		client.Initialize()
		s.docAI = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	documentServices := documentsService.NewDocumentService(s.log, s.docAI)
	documentHandlers := documentsHandler.New(s.log, s.validator, s.middleware, documentServices, s.utils)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, documentHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops accepting requests, then drains the extraction worker
// pool. Cleanup runs regardless of how any individual request ended.
func (s *Server) Shutdown() error {
	err := s.engine.Shutdown()
	s.docAI.Cleanup()
	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
