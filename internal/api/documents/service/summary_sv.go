package documentsService

import (
	"ProjectKYC/internal/api/documents"
	"ProjectKYC/internal/entity"
	"time"
)

// buildSummary aggregates the per-page field mappings into cross-page
// statistics. The form always counts as two pages; a page succeeds when
// at least one of its fields was extracted.
func buildSummary(pageOne, pageTwo map[string]entity.ExtractedField, elapsed time.Duration, extractor string) entity.ProcessingSummary {
	successfulPages := 0
	if len(pageOne) > 0 {
		successfulPages++
	}
	if len(pageTwo) > 0 {
		successfulPages++
	}

	total := 0.0
	count := 0
	for _, f := range pageOne {
		total += f.Confidence
		count++
	}
	for _, f := range pageTwo {
		total += f.Confidence
		count++
	}

	averageConfidence := 0.0
	if count > 0 {
		averageConfidence = total / float64(count)
	}

	return entity.ProcessingSummary{
		TotalPages:            documents.TotalPages,
		SuccessfulPages:       successfulPages,
		FailedPages:           documents.TotalPages - successfulPages,
		AverageConfidence:     averageConfidence,
		ProcessingTimeSeconds: elapsed.Seconds(),
		ExtractorUsed:         extractor,
	}
}
