package documentsService

import (
	"ProjectKYC/internal/entity"
	"ProjectKYC/pkg/docai"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IDocumentService interface {
	ProcessDocument(ctx context.Context, content []byte, mimeType string, startedAt time.Time) (*entity.ExtractedInformation, *entity.ProcessingSummary, error)
	ProcessorInfo() docai.ProcessorInfo
}

type documentService struct {
	log   *logrus.Logger
	docAI docai.IDocAI
}

func NewDocumentService(log *logrus.Logger, docAI docai.IDocAI) IDocumentService {
	return &documentService{
		log:   log,
		docAI: docAI,
	}
}
