package checklist

// Sheet layout.
const (
	// SheetName is the name of the single worksheet.
	SheetName = "STL Checklist"

	// MissingPreview is written in the preview column of files without an
	// image.
	MissingPreview = "Preview Missing"

	// WarningText heads the list of failed files.
	WarningText = "Warning: The following STL files failed to generate a preview:"

	// FolderLabelPrefix precedes the folder name in a section heading.
	FolderLabelPrefix = "Folder: "

	// PreviewDisplaySize is the displayed width and height of an embedded
	// preview, in pixels.
	PreviewDisplaySize = 200

	// ImageRowHeight is the height of rows holding a preview, in points.
	ImageRowHeight = 150
)

// Headers are the column titles of the header row.
var Headers = []string{"Filename", "Preview", "Checked and Available", "Not Needed"}

// ColumnWidths are the widths of columns A to D.
var ColumnWidths = []float64{30, 30, 20, 15}

// RowKind identifies what a Row represents.
type RowKind int

const (
	// HeaderRow holds the column titles.
	HeaderRow RowKind = iota
	// SpacerRow is an empty row before a folder section.
	SpacerRow
	// FolderRow is the "Folder: <name>" heading.
	FolderRow
	// DataRow describes one model file.
	DataRow
	// WarningRow is the warning heading.
	WarningRow
	// WarningEntryRow names one file without a preview.
	WarningEntryRow
)

// String returns the kind name.
func (k RowKind) String() string {
	switch k {
	case HeaderRow:
		return "header"
	case SpacerRow:
		return "spacer"
	case FolderRow:
		return "folder"
	case DataRow:
		return "data"
	case WarningRow:
		return "warning"
	case WarningEntryRow:
		return "warning entry"
	default:
		return "unknown"
	}
}

// Image is a preview picture anchored in the preview column.
type Image struct {
	Path   string
	Width  int
	Height int
}

// Row is one spreadsheet row.
type Row struct {
	Kind RowKind

	// Cells are the text values from column A onwards.
	Cells []string

	// Folder is the folder the row belongs to. Empty for header and
	// warning rows.
	Folder string

	// Image is set on data rows that carry a preview.
	Image *Image
}

// Bold reports whether the first cell of the row is bold.
func (r Row) Bold() bool {
	return r.Kind == HeaderRow || r.Kind == FolderRow || r.Kind == WarningRow
}

// Cell returns the value in column i, or an empty string.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

// Document is the ordered row model of the checklist.
type Document struct {
	rows []Row
}

// Rows returns a copy of the rows in sheet order.
func (d *Document) Rows() []Row {
	out := make([]Row, len(d.rows))
	copy(out, d.rows)
	return out
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return len(d.rows)
}

// HeaderIndex returns the zero-based index of the header row, or -1.
func (d *Document) HeaderIndex() int {
	for i, r := range d.rows {
		if r.Kind == HeaderRow {
			return i
		}
	}
	return -1
}

// DataRows returns the data rows in order.
func (d *Document) DataRows() []Row {
	return d.rowsOfKind(DataRow)
}

// Warnings returns the file names listed in the warning block.
func (d *Document) Warnings() []string {
	var names []string
	for _, r := range d.rowsOfKind(WarningEntryRow) {
		names = append(names, r.Cell(0))
	}
	return names
}

// Folders returns the folder headings in order, without the label prefix.
func (d *Document) Folders() []string {
	var folders []string
	for _, r := range d.rowsOfKind(FolderRow) {
		folders = append(folders, r.Folder)
	}
	return folders
}

func (d *Document) rowsOfKind(kind RowKind) []Row {
	var out []Row
	for _, r := range d.rows {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}
