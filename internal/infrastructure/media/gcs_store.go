package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/playtube/playtube-api/pkg/helpers"
)

// GCSStore stores media objects in a single Google Cloud Storage bucket,
// keyed as <folder>/<uuid><ext>.
type GCSStore struct {
	client *storage.Client
	bucket string
}

func NewGCSStore(client *storage.Client, bucket string) *GCSStore {
	return &GCSStore{client: client, bucket: bucket}
}

func (s *GCSStore) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error) {
	objectPath := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), extOf(filename))
	c, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	return helpers.UploadObject(c, s.client, s.bucket, objectPath, contentType, r)
}

func (s *GCSStore) Delete(ctx context.Context, url string) error {
	c, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return helpers.DeleteObject(c, s.client, s.bucket, url)
}

func extOf(filename string) string {
	for i := len(filename) - 1; i >= 0 && filename[i] != '/'; i-- {
		if filename[i] == '.' {
			return filename[i:]
		}
	}
	return ""
}

var _ Store = (*GCSStore)(nil)
