package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a stored object does not exist
var ErrNotFound = errors.New("object not found")

// Object describes one stored upload
type Object struct {
	Key      string
	Size     int64
	Modified time.Time
}

// Storage abstracts where submission uploads live. The local disk backend is
// the default; an S3-compatible Spaces backend covers multi-instance setups.
type Storage interface {
	// Save writes the object and returns the key it was stored under
	Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
	// Open returns a reader for the object, or ErrNotFound
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object, if any
	Delete(ctx context.Context, key string) error
	// List returns all stored objects under the given prefix
	List(ctx context.Context, prefix string) ([]Object, error)
}

// NewKey builds a collision-free storage key that keeps the original file
// name readable for download responses.
func NewKey(originalName string) string {
	base := filepath.Base(originalName)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%d-%s-%s", time.Now().Unix(), uuid.New().String()[:8], base)
}
