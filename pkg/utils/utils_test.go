package utils

import (
	"ProjectKYC/internal/api/documents"
	"errors"
	"mime/multipart"
	"testing"
	"time"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 26 {
		t.Fatalf("unexpected ULID length: %q", first)
	}

	second, err := u.NewULIDFromTimestamp(time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatalf("ULIDs must be unique")
	}
}

func TestValidateDocumentFile(t *testing.T) {
	u := New()

	cases := []struct {
		name string
		file *multipart.FileHeader
		want error
	}{
		{"nil file", nil, documents.ErrInvalidFileType},
		{"no filename", &multipart.FileHeader{Filename: "", Size: 10}, documents.ErrInvalidFileType},
		{"non-pdf extension", &multipart.FileHeader{Filename: "scan.png", Size: 10}, documents.ErrInvalidFileType},
		{"empty file", &multipart.FileHeader{Filename: "form.pdf", Size: 0}, documents.ErrEmptyFile},
		{"too large", &multipart.FileHeader{Filename: "form.pdf", Size: 21 * 1024 * 1024}, documents.ErrFileTooLarge},
		{"valid", &multipart.FileHeader{Filename: "form.PDF", Size: 1024}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := u.ValidateDocumentFile(tc.file)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestResolveMimeType(t *testing.T) {
	u := New()

	cases := []struct {
		name        string
		contentType string
		filename    string
		want        string
		wantErr     error
	}{
		{"pdf content type", "application/pdf", "form.pdf", "application/pdf", nil},
		{"content type with params", "Application/PDF; charset=binary", "form.pdf", "application/pdf", nil},
		{"fallback to extension", "", "form.pdf", "application/pdf", nil},
		{"jpeg extension fallback", "", "scan.JPG", "image/jpeg", nil},
		{"unsupported content type", "text/plain", "form.pdf", "", documents.ErrInvalidFileType},
		{"unknown extension", "", "form.docx", "", documents.ErrInvalidFileType},
		{"nothing to go on", "", "form", "", documents.ErrMissingContentType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := u.ResolveMimeType(tc.contentType, tc.filename)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
