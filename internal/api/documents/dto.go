package documents

import (
	"ProjectKYC/internal/entity"
	"time"
)

const (
	APIName        = "NCB Bank KYC Document Processing API"
	APIDescription = "API for extracting information from NCB Bank KYC forms using custom Document AI extractor"
	APIVersion     = "2.0.0"

	DefaultProcessingMode = "custom"
)

type ProcessingOptions struct {
	ExtractorMode string `form:"extractor_mode" validate:"omitempty,oneof=custom"`
}

type ProcessResponse struct {
	RequestID            string                      `json:"request_id"`
	Filename             string                      `json:"filename"`
	ProcessingMode       string                      `json:"processing_mode"`
	ExtractedInformation entity.ExtractedInformation `json:"extracted_information"`
	Summary              entity.ProcessingSummary    `json:"summary"`
	Timestamp            time.Time                   `json:"timestamp"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

type ExtractorInfo struct {
	ID          string `json:"id"`
	Version     string `json:"version,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SupportedFields struct {
	PageOne []string `json:"page_one"`
	PageTwo []string `json:"page_two"`
}

type InfoResponse struct {
	APIName         string          `json:"api_name"`
	Version         string          `json:"version"`
	Description     string          `json:"description"`
	CustomExtractor ExtractorInfo   `json:"custom_extractor"`
	SupportedFields SupportedFields `json:"supported_fields"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error     ErrorDetail `json:"error"`
	RequestID string      `json:"request_id"`
	Timestamp time.Time   `json:"timestamp"`
}
