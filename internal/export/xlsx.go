package export

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Asset Inventory"

// WriteXLSX writes a single-sheet workbook with human-readable header labels
// and fixed column widths.
func WriteXLSX(w io.Writer, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	for i, col := range AssetColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, col.Label); err != nil {
			return err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, name, name, col.XLSXWidth); err != nil {
			return err
		}
	}

	for r, rec := range records {
		for c, v := range rec {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
