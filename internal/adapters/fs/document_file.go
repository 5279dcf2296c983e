package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bft-labs/mdmedium/internal/domain"
	"github.com/bft-labs/mdmedium/internal/ports"
)

// DocumentFileStore implements ports.DocumentStore on the local file system.
type DocumentFileStore struct {
	outputDir string
	suffix    string
}

// NewDocumentFileStore creates a store that saves into outputDir.
// An empty outputDir means the current working directory.
func NewDocumentFileStore(outputDir, suffix string) *DocumentFileStore {
	if suffix == "" {
		suffix = domain.DefaultOutputSuffix
	}
	return &DocumentFileStore{outputDir: outputDir, suffix: suffix}
}

// Exists reports whether path is an existing regular file.
func (s *DocumentFileStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Read loads the document at path.
func (s *DocumentFileStore) Read(ctx context.Context, path string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, domain.NewIOError("read", path, err)
	}
	return domain.Document{Path: path, Text: string(data)}, nil
}

// Save writes clean to <outputDir>/<stem><suffix> atomically
// (write to temp file, then rename).
func (s *DocumentFileStore) Save(ctx context.Context, inputPath, clean string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := s.OutputPath(inputPath)

	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
			return "", domain.NewIOError("mkdir", s.outputDir, err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(clean), 0o644); err != nil {
		return "", domain.NewIOError("write", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", domain.NewIOError("rename", path, err)
	}
	return path, nil
}

// OutputPath returns where Save would write the output for inputPath.
func (s *DocumentFileStore) OutputPath(inputPath string) string {
	name := domain.OutputFileName(inputPath, s.suffix)
	if s.outputDir == "" {
		return name
	}
	return filepath.Join(s.outputDir, name)
}

var _ ports.DocumentStore = (*DocumentFileStore)(nil)
