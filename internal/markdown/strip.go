package markdown

import "strings"

const escape = '\x1b'

// StripStyling removes terminal escape sequences. A sequence runs from ESC
// up to and including the next 'm' on the same line. An ESC with no 'm'
// after it ends scanning of that line.
func StripStyling(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = stripLine(line)
	}
	return strings.Join(lines, "\n")
}

func stripLine(line string) string {
	for {
		start := strings.IndexByte(line, escape)
		if start < 0 {
			return line
		}
		end := strings.IndexByte(line[start:], 'm')
		if end < 0 {
			return line
		}
		line = line[:start] + line[start+end+1:]
	}
}

// HasStyling reports whether text still contains an ESC byte.
func HasStyling(text string) bool {
	return strings.IndexByte(text, escape) >= 0
}
