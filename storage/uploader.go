package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ItemsPrefix is where menu item pictures go inside the bucket.
const ItemsPrefix = "items/"

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageUploader writes menu pictures to a bucket under unique keys.
type ImageUploader struct {
	bucket Bucket
	now    func() time.Time
	token  func() string
}

func NewImageUploader(bucket Bucket) *ImageUploader {
	return &ImageUploader{
		bucket: bucket,
		now:    time.Now,
		token: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
		},
	}
}

// Key builds items/<token>-<unix millis><ext> for the original filename.
func (u *ImageUploader) Key(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}
	return fmt.Sprintf("%s%s-%d%s", ItemsPrefix, u.token(), u.now().UnixMilli(), ext), nil
}

// Upload stores the file and returns its public URL.
func (u *ImageUploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key, err := u.Key(filename)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if err := u.bucket.Put(ctx, key, body, contentType); err != nil {
		return "", fmt.Errorf("%w: put %s/%s: %w", ErrUploadFailed, u.bucket.Name(), key, err)
	}
	return u.bucket.PublicURL(key), nil
}
