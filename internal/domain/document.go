package domain

import (
	"path/filepath"
	"strings"
)

// DefaultTitle is used when a document has no top-level heading.
const DefaultTitle = "Untitled Post"

// DefaultOutputSuffix is appended to the input stem to name the saved file.
const DefaultOutputSuffix = "_medium.txt"

// Document is the raw text of one Markdown file.
type Document struct {
	// Path is where the text was read from.
	Path string

	// Text is the file content, unmodified.
	Text string
}

// Stem returns the file name without directory or final extension.
func (d Document) Stem() string {
	return FileStem(d.Path)
}

// Conversion holds both renderings of a formatted document.
type Conversion struct {
	Title string
	Tags  []string

	// Styled carries terminal escape codes and is meant for display.
	Styled string

	// Clean is Styled with every escape sequence removed.
	Clean string
}

// FileStem returns the base name of path without its final extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputFileName names the persisted artifact for inputPath.
// An empty suffix falls back to DefaultOutputSuffix.
func OutputFileName(inputPath, suffix string) string {
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}
	return FileStem(inputPath) + suffix
}

// IsMarkdownPath reports whether path carries a Markdown extension.
func IsMarkdownPath(path string) bool {
	return strings.HasSuffix(path, ".md") || strings.HasSuffix(path, ".markdown")
}
