package domain

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		input  string
		suffix string
		want   string
	}{
		{"post.md", "", "post_medium.txt"},
		{"/tmp/drafts/post.markdown", "", "post_medium.txt"},
		{"notes", "", "notes_medium.txt"},
		{"archive.v2.md", "", "archive.v2_medium.txt"},
		{"post.md", ".out", "post.out"},
	}

	for _, tt := range tests {
		if got := OutputFileName(tt.input, tt.suffix); got != tt.want {
			t.Errorf("OutputFileName(%q, %q) = %q, want %q", tt.input, tt.suffix, got, tt.want)
		}
	}
}

func TestIsMarkdownPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.md", true},
		{"a.markdown", true},
		{"a.txt", false},
		{"md", false},
	}

	for _, tt := range tests {
		if got := IsMarkdownPath(tt.path); got != tt.want {
			t.Errorf("IsMarkdownPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIOError(t *testing.T) {
	if NewIOError("read", "x", nil) != nil {
		t.Fatal("NewIOError with nil cause should return nil")
	}

	err := fmt.Errorf("convert: %w", NewIOError("read", "/missing.md", os.ErrNotExist))

	if !errors.Is(err, ErrIO) {
		t.Error("errors.Is(err, ErrIO) = false, want true")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is(err, os.ErrNotExist) = false, want true")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("errors.Is(err, ErrInvalidConfig) = true, want false")
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Path != "/missing.md" {
		t.Errorf("errors.As did not recover IOError, got %+v", ioErr)
	}
}
