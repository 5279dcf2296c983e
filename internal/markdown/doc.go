// Package markdown rewrites Markdown text into the plain-text layout that
// Medium's editor accepts on paste.
//
// The package does not parse Markdown. It applies literal marker
// substitutions line by line:
//
//	# Title      ->  📝 Title
//	## Section   ->  📌 Section
//	### Detail   ->  🔸 Detail
//	- item       ->  • item
//	* item       ->  • item
//	7. item      ->  1. item   (each run of numbered lines restarts at 1)
//
// Heading markers are replaced longest first, so a "### " line is never
// partially rewritten by the "## " or "# " rule.
//
// [FormatForMedium] returns styled text carrying terminal escape codes;
// [StripStyling] removes them to produce the copy written to disk. All
// functions are pure and safe for concurrent use.
package markdown
