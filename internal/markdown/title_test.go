package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		want   string
		wantOK bool
	}{
		{"first heading", "# My Title\n\nbody", "My Title", true},
		{"heading after text", "intro\n# Later Title\n", "Later Title", true},
		{"only first match", "# One\n# Two\n", "One", true},
		{"level two is not a title", "## Section\ntext", "", false},
		{"no heading", "plain text\n- item\n", "", false},
		{"empty document", "", "", false},
		{"indented marker does not match", "  # Indented\n", "", false},
		{"crlf line endings", "# Windows\r\nbody\r\n", "Windows", true},
		{"repeated marker prefix", "# # Doubled\n", "Doubled", true},
		{"deeper heading before title", "### Deep\n## Mid\n# Top\n", "Top", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTitle(tt.doc)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTitleOrDefault(t *testing.T) {
	assert.Equal(t, "Hello", TitleOrDefault("# Hello", "Untitled Post"))
	assert.Equal(t, "Untitled Post", TitleOrDefault("no title here", "Untitled Post"))
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"go, rust ,cli", []string{"go", "rust", "cli"}},
		{"single", []string{"single"}},
		{"", []string{}},
		{" , ,", []string{}},
		{"b,a", []string{"b", "a"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTags(tt.in), "ParseTags(%q)", tt.in)
	}
}
