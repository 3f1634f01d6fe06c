package checklist

import (
	"fmt"
	_ "image/png" // excelize decodes embedded previews
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// columns are the sheet columns from left to right.
var columns = []string{"A", "B", "C", "D"}

// styles holds the style IDs registered in a workbook.
type styles struct {
	bold    int
	warning int
}

func newStyles(f *excelize.File) (styles, error) {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return styles{}, fmt.Errorf("failed to create bold style: %w", err)
	}
	warning, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: "FF0000"}})
	if err != nil {
		return styles{}, fmt.Errorf("failed to create warning style: %w", err)
	}
	return styles{bold: bold, warning: warning}, nil
}

// Workbook renders doc into a new workbook. The caller must Close it.
func Workbook(doc *Document) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := writeSheet(f, doc); err != nil {
		_ = f.Close() //nolint:errcheck // the write error is more useful
		return nil, err
	}
	return f, nil
}

func writeSheet(f *excelize.File, doc *Document) error {
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, width := range ColumnWidths {
		if err := f.SetColWidth(SheetName, columns[i], columns[i], width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", columns[i], err)
		}
	}

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	for i, row := range doc.rows {
		if err := writeRow(f, st, i+1, row); err != nil {
			return fmt.Errorf("row %d (%s): %w", i+1, row.Kind, err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, st styles, n int, row Row) error {
	for col, value := range row.Cells {
		if value == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, n)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return err
		}
	}

	switch row.Kind {
	case HeaderRow:
		if err := setStyle(f, n, len(row.Cells), st.bold); err != nil {
			return err
		}
	case FolderRow:
		if err := setStyle(f, n, 1, st.bold); err != nil {
			return err
		}
	case WarningRow:
		if err := setStyle(f, n, 1, st.warning); err != nil {
			return err
		}
	}

	if row.Image != nil {
		return addPreview(f, n, row.Image)
	}
	return nil
}

// setStyle applies style to columns 1..cols of row n.
func setStyle(f *excelize.File, n, cols, style int) error {
	first, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, n)
	if err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, first, last, style)
}

func addPreview(f *excelize.File, n int, img *Image) error {
	cell, err := excelize.CoordinatesToCellName(2, n)
	if err != nil {
		return err
	}
	opts := &excelize.GraphicOptions{
		ScaleX:      displayScale(img.Width),
		ScaleY:      displayScale(img.Height),
		Positioning: "oneCell",
	}
	if err := f.AddPicture(SheetName, cell, img.Path, opts); err != nil {
		return fmt.Errorf("failed to embed %s: %w", filepath.Base(img.Path), err)
	}
	return f.SetRowHeight(SheetName, n, ImageRowHeight)
}

// displayScale returns the factor that shows a side of px pixels at
// PreviewDisplaySize.
func displayScale(px int) float64 {
	if px <= 0 {
		return 1
	}
	return float64(PreviewDisplaySize) / float64(px)
}

// Save writes doc to path as an xlsx workbook, creating the parent directory
// if needed.
func Save(doc *Document, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := Workbook(doc)
	if err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		_ = f.Close() //nolint:errcheck // the save error is more useful
		return fmt.Errorf("failed to save checklist: %w", err)
	}
	return f.Close()
}
