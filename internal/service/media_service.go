package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/config"
)

// Sentinel errors for the attachment store.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileNotFound        = errors.New("file not found")
)

// Allowed upload MIME types and their canonical extensions.
var allowedMIMETypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// MediaService is the durable attachment store: a side-effecting blob
// sink on local disk keyed by generated file name, with no business
// rules of its own.
type MediaService struct {
	cfg *config.Config
}

// NewMediaService creates a new MediaService.
func NewMediaService(cfg *config.Config) *MediaService {
	return &MediaService{cfg: cfg}
}

// Store persists an uploaded file and returns its generated name. The
// name is a millisecond timestamp prefix plus a random UUID, so
// same-millisecond concurrent uploads cannot collide. The extension is
// derived from the declared MIME type, never from the client-supplied
// file name, which keeps generated names safe as path segments.
func (s *MediaService) Store(file multipart.File, header *multipart.FileHeader) (string, error) {
	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedMIMETypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s (allowed: %s)",
			ErrUnsupportedFileType, contentType, strings.Join(allowedTypes(), ", "))
	}

	if header.Size > s.cfg.MaxUploadBytes {
		return "", fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.cfg.MaxUploadBytes)
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	destPath := filepath.Join(s.cfg.UploadDir, name)

	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return name, nil
}

// StoreHeader opens and stores a file directly from its multipart
// header. Convenience for multi-file fields where only headers are at
// hand.
func (s *MediaService) StoreHeader(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()
	return s.Store(file, header)
}

// Open resolves a generated name back to its stored file. Names that
// are not plain path segments are treated as absent rather than
// resolved, so client input can never traverse outside the upload dir.
func (s *MediaService) Open(name string) (*os.File, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return nil, ErrFileNotFound
	}

	f, err := os.Open(filepath.Join(s.cfg.UploadDir, name))
	if os.IsNotExist(err) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open stored file: %w", err)
	}
	return f, nil
}

func allowedTypes() []string {
	types := make([]string, 0, len(allowedMIMETypes))
	for t := range allowedMIMETypes {
		types = append(types, t)
	}
	return types
}
