package ports

import (
	"context"

	"github.com/bft-labs/mdmedium/internal/domain"
)

// DocumentStore reads source documents and persists converted output.
// Every error returned matches domain.ErrIO.
type DocumentStore interface {
	// Exists reports whether path names a readable regular file.
	Exists(path string) bool

	// Read loads the whole file at path.
	Read(ctx context.Context, path string) (domain.Document, error)

	// Save writes clean output next to the configured output directory,
	// named after inputPath, and returns the path written.
	Save(ctx context.Context, inputPath, clean string) (string, error)
}
