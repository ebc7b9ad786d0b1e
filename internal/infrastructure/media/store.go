package media

import (
	"context"
	"io"
)

// Store is the media hosting boundary. Upload returns a public URL; Delete
// takes the same URL back.
type Store interface {
	Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}
