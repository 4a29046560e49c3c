// Package sheet renders a crosstab header grid into a workbook and reads it back.
package sheet

import (
	"strconv"

	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/xuri/excelize/v2"
)

// ReadCells returns the non-empty rows of a sheet.
func ReadCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[string]interface{})
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = parseValue(cellValue)
		}
		if len(cellMap) > 0 {
			result = append(result, models.CellRow{R: rowIdx + 1, C: cellMap})
		}
	}
	return result, nil
}

// parseValue returns int64 for integers, float64 for decimals, or s unchanged.
// Level labels such as years come back as numbers.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
