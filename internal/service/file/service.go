package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/storage"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

// allowedPhotoExts is the clock-in/out photo allow-list.
var allowedPhotoExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// photoURLExpiry applies to backends that sign their URLs; the local
// backend ignores it.
const photoURLExpiry = 15 * time.Minute

type FileService interface {
	// SavePhoto stores an attendance photo and returns its storage key.
	SavePhoto(ctx context.Context, employeeID, originalName string, content io.Reader) (string, error)
	GetPhoto(ctx context.Context, path string) (io.ReadCloser, string, error)
	// PhotoURL returns a client-fetchable URL for a stored photo.
	PhotoURL(ctx context.Context, path string) (string, error)
	// DeletePhoto removes a stored photo; a missing file is not an
	// error.
	DeletePhoto(ctx context.Context, path string) error
}

type FileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) FileService {
	return &FileServiceImpl{storage: fileStorage}
}

// SavePhoto implements FileService.
func (s *FileServiceImpl) SavePhoto(ctx context.Context, employeeID, originalName string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))

	allowed := false
	for _, e := range allowedPhotoExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", ErrUnsupportedFileType
	}

	path := fmt.Sprintf("%s/%s%s", employeeID, uuid.New().String(), ext)
	contentType := mime.TypeByExtension(ext)

	stored, err := s.storage.Upload(ctx, content, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store photo: %w", err)
	}

	return stored, nil
}

// GetPhoto implements FileService.
func (s *FileServiceImpl) GetPhoto(ctx context.Context, path string) (io.ReadCloser, string, error) {
	reader, err := s.storage.Download(ctx, path)
	if err != nil {
		return nil, "", err
	}

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return reader, contentType, nil
}

// PhotoURL implements FileService.
func (s *FileServiceImpl) PhotoURL(ctx context.Context, path string) (string, error) {
	return s.storage.GetURL(ctx, path, photoURLExpiry)
}

// DeletePhoto implements FileService.
func (s *FileServiceImpl) DeletePhoto(ctx context.Context, path string) error {
	exists, err := s.storage.Exists(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to check photo: %w", err)
	}
	if !exists {
		return nil
	}
	return s.storage.Delete(ctx, path)
}
