package markdown

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the subset of document metadata mdmedium understands.
type FrontMatter struct {
	Title string   `yaml:"title" toml:"title" json:"title"`
	Tags  []string `yaml:"tags" toml:"tags" json:"tags"`
}

// SplitFrontMatter separates a leading front matter block (YAML, TOML or
// JSON) from the Markdown body. Text without front matter is returned whole
// with a zero FrontMatter.
func SplitFrontMatter(document string) (FrontMatter, string, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(document), &meta)
	if err != nil {
		return FrontMatter{}, "", fmt.Errorf("parse front matter: %w", err)
	}

	tags := make([]string, 0, len(meta.Tags))
	for _, tag := range meta.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	meta.Tags = tags
	meta.Title = strings.TrimSpace(meta.Title)

	return meta, string(body), nil
}
