// Package archive copies finished renders to a storage provider so outputs
// survive beyond the render host's local disk.
package archive

import (
	"context"
	"os"

	"motiongfx/internal/pkg/errors"
	"motiongfx/internal/pkg/logger"
	"motiongfx/internal/storage"
)

// Archiver uploads completed output files through a storage provider.
type Archiver struct {
	provider storage.Provider
	log      *logger.Logger
}

func New(provider storage.Provider, log *logger.Logger) *Archiver {
	return &Archiver{
		provider: provider,
		log:      log.WithComponent("archive"),
	}
}

// Archive uploads the file at localPath under the given name. The local
// copy is kept; the outputs endpoints keep serving from disk.
func (a *Archiver) Archive(ctx context.Context, localPath, filename string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return errors.Wrap(err, "archive.open", "could not open output file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "archive.stat", "could not stat output file")
	}

	out, err := a.provider.PutObject(ctx, storage.PutObjectInput{
		ObjectKey:   filename,
		ContentType: "video/mp4",
		Reader:      f,
		Size:        info.Size(),
	})
	if err != nil {
		return errors.Wrap(err, "archive.put", "upload failed")
	}

	a.log.Info("output archived",
		"provider", a.provider.Provider(),
		"file", filename,
		"object_key", out.ObjectKey,
		"size", out.Size,
	)
	return nil
}
