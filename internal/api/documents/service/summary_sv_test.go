package documentsService

import (
	"ProjectKYC/internal/entity"
	"math"
	"testing"
	"time"
)

func TestBuildSummaryBothPagesSuccessful(t *testing.T) {
	pageOne := map[string]entity.ExtractedField{
		"FirstName": {Value: "John", Confidence: 0.95, Page: 0},
	}
	pageTwo := map[string]entity.ExtractedField{
		"Employer": {Value: "ABC Co", Confidence: 0.92, Page: 1},
	}

	summary := buildSummary(pageOne, pageTwo, 1500*time.Millisecond, "custom-ncb-extractor")

	if summary.TotalPages != 2 || summary.SuccessfulPages != 2 || summary.FailedPages != 0 {
		t.Fatalf("unexpected page counts: %+v", summary)
	}
	if math.Abs(summary.AverageConfidence-0.935) > 1e-9 {
		t.Fatalf("expected average confidence 0.935, got %v", summary.AverageConfidence)
	}
	if math.Abs(summary.ProcessingTimeSeconds-1.5) > 1e-9 {
		t.Fatalf("expected 1.5s processing time, got %v", summary.ProcessingTimeSeconds)
	}
	if summary.ExtractorUsed != "custom-ncb-extractor" {
		t.Fatalf("unexpected extractor: %q", summary.ExtractorUsed)
	}
}

func TestBuildSummaryEmptyExtraction(t *testing.T) {
	summary := buildSummary(map[string]entity.ExtractedField{}, map[string]entity.ExtractedField{}, time.Second, "custom-ncb-extractor")

	if summary.SuccessfulPages != 0 || summary.FailedPages != 2 {
		t.Fatalf("unexpected page counts: %+v", summary)
	}
	if summary.AverageConfidence != 0.0 {
		t.Fatalf("expected zero average confidence, got %v", summary.AverageConfidence)
	}
}

func TestBuildSummaryPageCountInvariant(t *testing.T) {
	cases := []struct {
		name    string
		pageOne map[string]entity.ExtractedField
		pageTwo map[string]entity.ExtractedField
	}{
		{"both empty", nil, nil},
		{"page one only", map[string]entity.ExtractedField{"CIF": {Value: "1", Confidence: 0.4}}, nil},
		{"page two only", nil, map[string]entity.ExtractedField{"Employer": {Value: "x", Confidence: 0.8}}},
		{
			"both populated",
			map[string]entity.ExtractedField{"CIF": {Value: "1", Confidence: 0.4}},
			map[string]entity.ExtractedField{"Employer": {Value: "x", Confidence: 0.8}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			summary := buildSummary(tc.pageOne, tc.pageTwo, time.Second, "custom-ncb-extractor")
			if summary.SuccessfulPages+summary.FailedPages != summary.TotalPages {
				t.Fatalf("page invariant violated: %+v", summary)
			}
		})
	}
}
