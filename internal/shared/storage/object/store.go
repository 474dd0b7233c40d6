package object

import (
	"context"
	"io"
)

// FeedPrefix is the key namespace for uploaded provider feeds.
const FeedPrefix = "feeds"

// ObjectStore saves and retrieves uploaded catalog feed documents.
type ObjectStore interface {
	// Save stores r under a fresh key in the owner's namespace and returns that key.
	Save(ctx context.Context, owner string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
