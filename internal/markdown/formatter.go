package markdown

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Glyphs substituted for Markdown markers.
const (
	MemoGlyph      = "📝"
	PinGlyph       = "📌"
	DiamondGlyph   = "🔸"
	BulletGlyph    = "•"
	SeparatorGlyph = "─"
	TagsLabel      = "🏷️  Tags: "
)

// SeparatorWidth is the number of separator glyphs under the header.
const SeparatorWidth = 50

// headingRules run in order; the longest marker goes first.
var headingRules = []struct {
	marker string
	glyph  string
}{
	{"### ", DiamondGlyph + " "},
	{"## ", PinGlyph + " "},
	{"# ", MemoGlyph + " "},
}

// Header styles are forced on so output does not depend on the terminal.
var (
	titleStyle     = forcedColor(color.Bold, color.FgHiCyan)
	tagsStyle      = forcedColor(color.FgHiBlue)
	separatorStyle = forcedColor(color.FgHiWhite)
)

func forcedColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// FormatForMedium composes the styled output: a header with title, tags and
// a separator, followed by the converted body.
func FormatForMedium(document, title string, tags []string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Sprint(title))
	b.WriteString("\n\n")

	if len(tags) > 0 {
		b.WriteString(TagsLabel)
		b.WriteString(tagsStyle.Sprint(strings.Join(tags, ", ")))
		b.WriteString("\n\n")
	}

	b.WriteString(separatorStyle.Sprint(strings.Repeat(SeparatorGlyph, SeparatorWidth)))
	b.WriteString("\n\n")

	b.WriteString(ConvertBody(document))
	return b.String()
}

// ConvertBody applies the heading, bullet and numbered-list rewrites.
func ConvertBody(content string) string {
	result := content
	for _, rule := range headingRules {
		result = strings.ReplaceAll(result, rule.marker, rule.glyph)
	}

	result = strings.ReplaceAll(result, "- ", BulletGlyph+" ")
	result = strings.Join(convertStarBullets(splitLines(result)), "\n")

	return strings.Join(renumber(splitLines(result)), "\n")
}

// convertStarBullets rewrites a leading "* " but leaves "**bold**" alone.
func convertStarBullets(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "* ") && !strings.HasPrefix(trimmed, "**") {
			line = strings.Replace(line, "* ", BulletGlyph+" ", 1)
		}
		out[i] = line
	}
	return out
}

// renumber restarts every run of "N. " lines at 1. Only single-digit
// prefixes are recognised.
func renumber(lines []string) []string {
	out := make([]string, len(lines))
	counter := 1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !isOrderedItem(trimmed) {
			out[i] = line
			counter = 1
			continue
		}
		out[i] = fmt.Sprintf("%d. %s", counter, trimmed[3:])
		counter++
	}
	return out
}

func isOrderedItem(trimmed string) bool {
	return len(trimmed) >= 3 &&
		trimmed[0] >= '1' && trimmed[0] <= '9' &&
		trimmed[1] == '.' &&
		trimmed[2] == ' '
}
