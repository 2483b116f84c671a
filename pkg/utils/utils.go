package utils

import (
	"ProjectKYC/internal/api/documents"
	"ProjectKYC/pkg/response"
	"crypto/rand"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// MIME types the document understanding backend accepts.
var supportedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"image/png":       {},
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/tiff":      {},
	"image/tif":       {},
}

var extensionToMime = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
}

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateDocumentFile(file *multipart.FileHeader) error
	ResolveMimeType(contentType, filename string) (string, error)
	ReadMultipartFile(file *multipart.FileHeader) ([]byte, error)
}

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: 20 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// ValidateDocumentFile enforces the upload boundary: PDF filename,
// non-empty content, 20 MB ceiling. It runs before any backend call.
func (u *utils) ValidateDocumentFile(file *multipart.FileHeader) error {
	if file == nil || file.Filename == "" {
		return documents.ErrInvalidFileType
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return documents.ErrInvalidFileType
	}

	if file.Size == 0 {
		return documents.ErrEmptyFile
	}

	if file.Size > u.maxFileSize {
		return response.WithDetails(documents.ErrFileTooLarge, map[string]interface{}{
			"file_size_bytes": file.Size,
			"max_size_bytes":  u.maxFileSize,
		})
	}

	return nil
}

// ResolveMimeType picks the MIME type sent to the backend, preferring
// the request's Content-Type header and falling back to the filename
// extension.
func (u *utils) ResolveMimeType(contentType, filename string) (string, error) {
	normalized := strings.TrimSpace(strings.ToLower(strings.Split(contentType, ";")[0]))

	// Generic multipart uploads arrive as octet-stream; the extension
	// decides in that case.
	if normalized == "" || normalized == "application/octet-stream" {
		ext := strings.ToLower(filepath.Ext(filename))
		if ext == "" {
			return "", documents.ErrMissingContentType
		}

		mimeType, ok := extensionToMime[ext]
		if !ok {
			return "", documents.ErrInvalidFileType
		}
		return mimeType, nil
	}

	if _, ok := supportedMimeTypes[normalized]; !ok {
		return "", documents.ErrInvalidFileType
	}

	return normalized, nil
}

func (u *utils) ReadMultipartFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
