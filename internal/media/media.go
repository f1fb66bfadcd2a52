// Package media stores uploaded images for articles and author avatars.
package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxSize is the upload limit when none is configured
const DefaultMaxSize = 2 * 1024 * 1024

var (
	ErrEmpty           = errors.New("upload is empty")
	ErrTooLarge        = errors.New("upload exceeds size limit")
	ErrUnsupportedType = errors.New("upload is not an image")
)

// Uploader stores an image and returns the URL it can be served from
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// Service checks uploads before handing them to an Uploader
type Service struct {
	uploader Uploader
	maxSize  int64
}

func NewService(uploader Uploader, maxSize int64) *Service {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Service{uploader: uploader, maxSize: maxSize}
}

// MaxSize is the configured upload limit in bytes
func (s *Service) MaxSize() int64 {
	return s.maxSize
}

// Store validates size and content type, then uploads
func (s *Service) Store(ctx context.Context, name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if int64(len(data)) > s.maxSize {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), s.maxSize)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	return s.uploader.Upload(ctx, name, mt.String(), data)
}

// DataURL keeps images inline as data: URLs
type DataURL struct{}

func (DataURL) Upload(_ context.Context, _ string, contentType string, data []byte) (string, error) {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
