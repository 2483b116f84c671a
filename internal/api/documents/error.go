package documents

import (
	"ProjectKYC/pkg/response"
	"net/http"
)

var (
	ErrInvalidFileType    = response.NewError(http.StatusBadRequest, "only PDF files are supported")
	ErrMissingContentType = response.NewError(http.StatusBadRequest, "content type is required")
	ErrEmptyFile          = response.NewError(http.StatusBadRequest, "file is empty")
	ErrFileTooLarge       = response.NewError(http.StatusRequestEntityTooLarge, "file size exceeds maximum allowed size")
	ErrProcessingFailed   = response.NewError(http.StatusInternalServerError, "failed to process document")
)
