// Package storage holds the object storage used for menu images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// MenuImagesBucket is the bucket menu pictures live in.
const MenuImagesBucket = "menu-images"

var (
	ErrUploadFailed     = errors.New("upload failed")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// Bucket is a flat key/value object store whose objects are publicly readable.
type Bucket interface {
	Name() string
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	PublicURL(key string) string
}

// New builds the bucket backend named by backend.
func New(backend, directory, publicBaseURL, bucket string) (Bucket, error) {
	switch backend {
	case "", "local":
		local, err := NewLocalBackend(directory, publicBaseURL, bucket)
		if err != nil {
			return nil, fmt.Errorf("storage: local backend: %w", err)
		}
		return local, nil
	case "noop":
		return NewNoopBackend(publicBaseURL, bucket), nil
	default:
		return nil, fmt.Errorf("storage: unsupported backend %q", backend)
	}
}
