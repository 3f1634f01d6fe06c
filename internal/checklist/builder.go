package checklist

import (
	"errors"
	"fmt"

	"github.com/nao1215/printcheck/internal/model"
)

// ErrResultMismatch is returned when files and render results differ in
// length.
var ErrResultMismatch = errors.New("number of render results does not match number of files")

// ErrFinalized is returned when rows are added after Finalize.
var ErrFinalized = errors.New("checklist already finalized")

// Builder assembles a Document.
type Builder struct {
	doc       *Document
	finalized bool
}

// NewBuilder returns a Builder whose document holds only the header row.
func NewBuilder() *Builder {
	b := &Builder{}
	b.Initialize()
	return b
}

// Initialize resets the document to the header row.
func (b *Builder) Initialize() {
	b.doc = &Document{
		rows: []Row{{Kind: HeaderRow, Cells: append([]string(nil), Headers...)}},
	}
	b.finalized = false
}

// AddFolderSection appends a spacer row and a folder heading.
func (b *Builder) AddFolderSection(folder string) error {
	if b.finalized {
		return ErrFinalized
	}
	b.doc.rows = append(b.doc.rows,
		Row{Kind: SpacerRow, Folder: folder},
		Row{Kind: FolderRow, Folder: folder, Cells: []string{FolderLabelPrefix + folder}},
	)
	return nil
}

// AddRow appends the data row of file. A successful result embeds its image
// in the preview column, a failed one writes MissingPreview there. The
// reviewer columns stay empty.
func (b *Builder) AddRow(file model.ModelFile, result model.RenderResult) error {
	if b.finalized {
		return ErrFinalized
	}
	row := Row{
		Kind:   DataRow,
		Folder: file.Folder(),
		Cells:  []string{file.Name(), "", "", ""},
	}
	if result.OK() {
		row.Image = &Image{
			Path:   result.ImagePath,
			Width:  result.Width,
			Height: result.Height,
		}
	} else {
		row.Cells[1] = MissingPreview
	}
	b.doc.rows = append(b.doc.rows, row)
	return nil
}

// Finalize places the warning block above all other rows when failed is not
// empty, and returns the finished document. With k failures the header moves
// to row k+2 and no row is overwritten. Further adds are rejected until
// Initialize is called.
func (b *Builder) Finalize(failed []string) *Document {
	b.finalized = true
	if len(failed) == 0 {
		return b.doc
	}

	block := make([]Row, 0, len(failed)+1)
	block = append(block, Row{Kind: WarningRow, Cells: []string{WarningText}})
	for _, name := range failed {
		block = append(block, Row{Kind: WarningEntryRow, Cells: []string{name}})
	}
	b.doc.rows = append(block, b.doc.rows...)
	return b.doc
}

// Document returns the document built so far.
func (b *Builder) Document() *Document {
	return b.doc
}

// Build groups files by folder and returns the finalized document. files
// must be sorted by (folder, name) and results index aligned with them.
func Build(files []model.ModelFile, results []model.RenderResult, failed []string) (*Document, error) {
	if len(files) != len(results) {
		return nil, fmt.Errorf("%w: %d files, %d results", ErrResultMismatch, len(files), len(results))
	}

	b := NewBuilder()
	current := ""
	for i, f := range files {
		folder := f.Folder()
		if i == 0 || folder != current {
			if err := b.AddFolderSection(folder); err != nil {
				return nil, err
			}
			current = folder
		}
		if err := b.AddRow(f, results[i]); err != nil {
			return nil, err
		}
	}
	return b.Finalize(failed), nil
}
