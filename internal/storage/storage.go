package storage

import (
	"context"
	"io"
)

// Storage abstracts where generated files (such as outbox emails) are kept.
type Storage interface {
	// Save stores data under key and returns where it ended up.
	// key is a slash-separated path unique within the storage (e.g. "outbox/<name>.eml").
	Save(ctx context.Context, key string, data io.Reader, contentType string) (location string, err error)
}
