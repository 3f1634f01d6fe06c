// Package report collects preview failures and writes the run summary.
//
// Failures records the folder-qualified names of files whose preview could
// not be created, in processing order, and produces the one-line console
// summary. A Summary gathers the outcome of a whole run and can be written
// by any Writer:
//   - SimpleWriter: the console summary line
//   - MarkdownWriter: a Markdown run report
//   - JSONWriter: structured JSON for tool integration
package report
