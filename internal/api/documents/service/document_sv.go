package documentsService

import (
	"ProjectKYC/internal/entity"
	contextPkg "ProjectKYC/pkg/context"
	"ProjectKYC/pkg/docai"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ProcessDocument runs the full extraction pipeline for one uploaded
// document: backend call, field classification, summary aggregation.
// Each call is independent; nothing is cached across requests.
func (s *documentService) ProcessDocument(ctx context.Context, content []byte, mimeType string, startedAt time.Time) (*entity.ExtractedInformation, *entity.ProcessingSummary, error) {
	rawEntities, err := s.docAI.ExtractEntities(ctx, content, mimeType)
	if err != nil {
		return nil, nil, err
	}

	pageOne, pageTwo := classifyEntities(rawEntities)

	s.log.WithFields(logrus.Fields{
		"request_id":      contextPkg.GetRequestID(ctx),
		"entities":        len(rawEntities),
		"page_one_fields": len(pageOne),
		"page_two_fields": len(pageTwo),
	}).Debug("Classified extracted entities")

	information := &entity.ExtractedInformation{
		PageOne: buildPageOneFields(pageOne),
		PageTwo: buildPageTwoFields(pageTwo),
	}

	summary := buildSummary(pageOne, pageTwo, time.Since(startedAt), s.docAI.Info().Name)

	return information, &summary, nil
}

func (s *documentService) ProcessorInfo() docai.ProcessorInfo {
	return s.docAI.Info()
}
