package interfaces

import "context"

// IFileStorage stores generated documents and returns a public URL.
type IFileStorage interface {
	Upload(ctx context.Context, key string, contentType string, data []byte) (url string, err error)
}
