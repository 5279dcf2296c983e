// Package mdmedium converts Markdown drafts into text ready to paste into
// Medium's editor.
//
// Example usage:
//
//	raw, _ := os.ReadFile("post.md")
//	doc := string(raw)
//	title, ok := mdmedium.ExtractTitle(doc)
//	if !ok {
//	    title = mdmedium.DefaultTitle
//	}
//	styled := mdmedium.FormatForMedium(doc, title, mdmedium.ParseTags("go, cli"))
//	fmt.Println(styled)
//	os.WriteFile(mdmedium.OutputFileName("post.md"), []byte(mdmedium.StripStyling(styled)), 0o644)
package mdmedium

import (
	"github.com/bft-labs/mdmedium/internal/domain"
	"github.com/bft-labs/mdmedium/internal/markdown"
)

// DefaultTitle is the title callers use when ExtractTitle finds none.
const DefaultTitle = domain.DefaultTitle

// ErrIO matches every file read or write failure.
var ErrIO = domain.ErrIO

// ExtractTitle returns the text after "# " on the first line starting with
// that marker. The second result is false when no line matches.
func ExtractTitle(document string) (string, bool) {
	return markdown.ExtractTitle(document)
}

// FormatForMedium returns the styled output: title, optional tags line,
// separator, then the document with headings and lists rewritten.
func FormatForMedium(document, title string, tags []string) string {
	return markdown.FormatForMedium(document, title, tags)
}

// StripStyling removes terminal escape sequences, producing the clean
// variant written to disk.
func StripStyling(text string) string {
	return markdown.StripStyling(text)
}

// ParseTags splits a comma-separated list into trimmed tags.
func ParseTags(s string) []string {
	return markdown.ParseTags(s)
}

// OutputFileName returns "<stem>_medium.txt" for inputPath.
func OutputFileName(inputPath string) string {
	return domain.OutputFileName(inputPath, "")
}
