// Package main provides the entry point for the printcheck CLI.
//
// printcheck walks a folder of STL files, renders a small preview of each
// model and writes an xlsx checklist grouped by folder, so that a batch of
// parts can be reviewed before printing.
//
// Usage:
//
//	printcheck <stl-dir>
//	printcheck            # asks for the folder
//
// See --help for all available options.
package main

// main is the entry point for printcheck.
func main() {
	Execute()
}
