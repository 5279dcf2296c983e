package markdown

import "strings"

const titleMarker = "# "

// ExtractTitle returns the text of the first line that starts with "# ".
// The second result is false when no line matches. Deeper headings such as
// "## Subtitle" never match because their second character is '#'.
func ExtractTitle(document string) (string, bool) {
	for _, line := range splitLines(document) {
		if !strings.HasPrefix(line, titleMarker) {
			continue
		}
		for strings.HasPrefix(line, titleMarker) {
			line = line[len(titleMarker):]
		}
		return line, true
	}
	return "", false
}

// TitleOrDefault returns the extracted title, or fallback when there is none.
func TitleOrDefault(document, fallback string) string {
	if title, ok := ExtractTitle(document); ok {
		return title
	}
	return fallback
}

// ParseTags splits a comma-separated list into trimmed, non-empty tags.
func ParseTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
