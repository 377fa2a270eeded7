package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// NoopBackend drains uploads and keeps nothing. Useful when images are
// hosted elsewhere and admins only paste URLs.
type NoopBackend struct {
	baseURL string
	bucket  string
}

func NewNoopBackend(publicBaseURL, bucket string) *NoopBackend {
	return &NoopBackend{baseURL: strings.TrimRight(publicBaseURL, "/"), bucket: bucket}
}

func (b *NoopBackend) Name() string { return b.bucket }

func (b *NoopBackend) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := io.Copy(io.Discard, body)
	return err
}

func (b *NoopBackend) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/%s/%s", b.baseURL, b.bucket, strings.TrimPrefix(key, "/"))
}
