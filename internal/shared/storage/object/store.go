package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for storing and serving binary objects
// addressed by a deterministic storage key.
type ObjectStore interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Exists(ctx context.Context, storageKey string) (bool, error)
	// URL returns the public URL a client can fetch the object from.
	URL(storageKey string) string
}
