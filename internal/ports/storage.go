package ports

import (
	"context"
	"io"
)

type PutObjectInput struct {
	ObjectKey   string
	ContentType string
	Reader      io.Reader
	Size        int64
}

type PutObjectOutput struct {
	// On localfs this is the object key itself.
	// On gdrive it is the real fileId.
	ObjectKey string
	Size      int64
}

// StorageProvider archives finished renders (localfs, gdrive, ...).
type StorageProvider interface {
	Provider() string
	PutObject(ctx context.Context, in PutObjectInput) (PutObjectOutput, error)
}
