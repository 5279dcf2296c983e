// Package domain contains the core value types and errors for mdmedium.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (file system, terminal, logging) and holds only
// the values that flow through a single conversion.
//
// # Values
//
//   - [Document]: raw Markdown text read from one file
//   - [Conversion]: the styled and clean renderings of one document
//
// # Errors
//
// Every filesystem failure surfaces as an [IOError], which matches
// [ErrIO] under errors.Is. The text transformation itself never fails.
package domain
