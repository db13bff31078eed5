// Package reader turns an uploaded statement file into a grid of cell text.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Grid is a statement as rows of trimmed cells. Row 0 is the header. Rows
// are not padded, so callers must check len(row) before positional access.
type Grid [][]string

// Header returns row 0, or nil for an empty grid.
func (g Grid) Header() []string {
	if len(g) == 0 {
		return nil
	}
	return g[0]
}

// FirstDataRow returns row 1, or nil when the grid has no data rows.
func (g Grid) FirstDataRow() []string {
	if len(g) < 2 {
		return nil
	}
	return g[1]
}

// ErrUnsupportedFormat matches any UnsupportedFormatError via errors.Is.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// UnsupportedFormatError reports a filename extension with no reader.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}

// Is lets errors.Is(err, ErrUnsupportedFormat) match.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// Read dispatches on the filename extension and returns the cell grid.
// Blank rows are dropped by every format.
func Read(data []byte, filename string) (Grid, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return ReadCSV(data), nil
	case ".xlsx":
		return ReadXLSX(data)
	case ".xls":
		return ReadXLS(data)
	default:
		return nil, &UnsupportedFormatError{Ext: ext}
	}
}

// SupportedExtensions lists the extensions Read accepts.
func SupportedExtensions() []string {
	return []string{".csv", ".xlsx", ".xls"}
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func trimCells(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}

// padRows extends every row with empty cells to the width of the widest row.
func padRows(grid Grid) Grid {
	width := 0
	for _, row := range grid {
		width = max(width, len(row))
	}
	for i, row := range grid {
		if n := width - len(row); n > 0 {
			grid[i] = append(row, make([]string, n)...)
		}
	}
	return grid
}
