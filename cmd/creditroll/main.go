// Package main provides the entry point for the creditroll CLI.
//
// creditroll collects a project's contributors, translators and sponsors
// and writes them as a Markdown credits page plus a structured document.
//
// Usage:
//
//	creditroll CONTRIBUTORS.md contributors.json
//	creditroll init
//
// See --help for all available options.
package main

// main is the entry point for creditroll.
func main() {
	Execute()
}
