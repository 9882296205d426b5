package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"KabisaBizSuite/api/grid"
	"KabisaBizSuite/internal/recordstore"
)

// XLSXFilename names a spreadsheet download after its table and the
// current date.
func XLSXFilename(table string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", table, now.Format("2006-01-02"))
}

// WriteXLSX renders rows as a single-sheet workbook. The header carries
// display labels; body cells hold the grid-formatted values so currency
// and date columns export the way they display.
func WriteXLSX(w io.Writer, table string, rows []recordstore.Record, columns []grid.Column) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if table != "" {
		if err := f.SetSheetName(sheet, table); err != nil {
			return err
		}
		sheet = table
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.HeaderName); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for i, col := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			rendered := grid.FormatCell(row[col.Field], col)
			if err := f.SetCellValue(sheet, cell, rendered.Value); err != nil {
				return err
			}
		}
	}

	_, err := f.WriteTo(w)
	return err
}
