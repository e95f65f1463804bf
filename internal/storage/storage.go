package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage keeps uploaded images and hands back the path they are reachable
// under. Deletion is used only for replaced images and is best effort at the
// call sites.
type Storage interface {
	Save(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
	Delete(ctx context.Context, filePath string) error
}

// LocalStorage writes images under <publicDir>/images, served statically.
type LocalStorage struct {
	publicDir string
}

func NewLocalStorage(publicDir string) (*LocalStorage, error) {
	imagesDir := filepath.Join(publicDir, "images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	return &LocalStorage{publicDir: publicDir}, nil
}

func (s *LocalStorage) Save(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	name := uniqueFileName(fileName)

	dst, err := os.Create(filepath.Join(s.publicDir, "images", name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	_, err = io.Copy(dst, file)
	if err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return path.Join("images", name), nil
}

func (s *LocalStorage) Delete(ctx context.Context, filePath string) error {
	// only paths issued by Save are deletable
	cleaned := path.Clean("/" + filePath)
	if !strings.HasPrefix(cleaned, "/images/") {
		return fmt.Errorf("refusing to delete outside images directory: %s", filePath)
	}

	err := os.Remove(filepath.Join(s.publicDir, filepath.FromSlash(strings.TrimPrefix(cleaned, "/"))))
	if err != nil {
		return fmt.Errorf("failed to delete image file: %w", err)
	}

	return nil
}

// uniqueFileName keeps the original base name and appends a unique suffix,
// preserving the extension.
func uniqueFileName(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}

	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	if base == "" || base == "." {
		base = "image"
	}

	return fmt.Sprintf("%s-%s%s", base, uuid.New().String(), ext)
}
