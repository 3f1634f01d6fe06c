// Package checklist builds the review spreadsheet.
//
// A Builder assembles a Document, an ordered list of typed rows: the header,
// one section per folder with a data row per model file, and an optional
// warning block listing files without a preview. Save renders a Document
// into an xlsx workbook with excelize.
//
// Rows are kept in memory until Save, so the warning block can be placed
// above content that was added before it without shifting embedded images.
package checklist
