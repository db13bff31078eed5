package reader

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX returns the first worksheet of an .xlsx workbook. Rows are
// padded to the widest row since excelize omits trailing empty cells.
func ReadXLSX(data []byte) (Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening xlsx: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("opening xlsx: no sheets found")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading xlsx rows: %w", err)
	}

	var grid Grid
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		grid = append(grid, trimCells(row))
	}
	return padRows(grid), nil
}

// ReadXLS returns the first worksheet of a legacy BIFF .xls workbook.
func ReadXLS(data []byte) (grid Grid, err error) {
	// The BIFF decoder indexes into records without bounds checks and panics
	// on truncated input.
	defer func() {
		if r := recover(); r != nil {
			grid, err = nil, fmt.Errorf("opening xls: corrupt workbook: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening xls: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, fmt.Errorf("opening xls: no sheets found")
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("opening xls: could not get first sheet")
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, row.LastCol())
		for j := range cells {
			cells[j] = row.Col(j)
		}
		if isBlankRow(cells) {
			continue
		}
		grid = append(grid, trimCells(cells))
	}
	return padRows(grid), nil
}
