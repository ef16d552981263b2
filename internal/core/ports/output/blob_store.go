package ports

import (
	"context"
	"io"
)

// BlobStore is the binary artifact storage the registry writes serialized
// estimators to. Paths are relative, slash-separated, and always of the
// form models/algorithms/<endpoint>.
type BlobStore interface {
	Write(ctx context.Context, path string, r io.Reader) error
	Read(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Rename(ctx context.Context, oldPath, newPath string) error
}
