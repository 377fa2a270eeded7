package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalBackend keeps objects under <root>/<bucket>/<key> on disk. The router
// serves that directory at /storage/<bucket>.
type LocalBackend struct {
	root    string
	baseURL string
	bucket  string
}

func NewLocalBackend(root, publicBaseURL, bucket string) (*LocalBackend, error) {
	if root == "" {
		root = filepath.Join("public", "storage")
	}
	dir := filepath.Join(root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &LocalBackend{
		root:    root,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		bucket:  bucket,
	}, nil
}

func (b *LocalBackend) Name() string { return b.bucket }

// Dir is the directory holding this bucket's objects.
func (b *LocalBackend) Dir() string { return filepath.Join(b.root, b.bucket) }

func (b *LocalBackend) objectPath(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(b.Dir(), filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func (b *LocalBackend) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := b.objectPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}

	f, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create object %s: %w", key, err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(target)
		return fmt.Errorf("write object %s: %w", key, err)
	}
	return f.Close()
}

func (b *LocalBackend) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/%s/%s", b.baseURL, b.bucket, strings.TrimPrefix(key, "/"))
}
