// Package report renders a credits document.
//
// This package contains writers for different output formats:
//   - MarkdownWriter: the human-facing credits page
//   - JSONWriter: the structured document, tab indented, keys in display order
//   - YAMLWriter: the same structured document as YAML
//   - SummaryWriter: per-group counts for the terminal
//
// Writers implement the Writer interface. Render produces a complete
// document in memory and WriteFile stores it, so a failed render never
// leaves a partial file behind.
package report
