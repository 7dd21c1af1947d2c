package filestorage

import (
	"context"
	"io"
)

// Object describes a validated upload ready to be written
type Object struct {
	Name        string // generated file name, no directories
	ContentType string
	Size        int64
	Body        io.Reader
}

// Storage is the backend uploaded images are written to
type Storage interface {
	// Save writes the object and returns the public URL stored on the entity row
	Save(ctx context.Context, obj Object) (string, error)

	// Delete removes a previously saved object by its public URL.
	// Deleting a missing object is not an error.
	Delete(ctx context.Context, fileURL string) error
}
