package header

import (
	"github.com/perNyfelt/birt/pkg/xtab/axis"
	"github.com/perNyfelt/birt/pkg/xtab/models"
)

// Extent returns the number of rows and columns of the header grid.
//
// Row-axis levels span header columns and column-axis levels span header rows. A shown
// horizontal measure header adds a column; a shown vertical measure header adds a row.
func Extent(ct *models.Crosstab) (rows, cols int) {
	cols = axis.LevelCount(ct, models.RowAxis)
	if ShowColumnMeasureHeader(ct) {
		cols++
	}
	rows = axis.LevelCount(ct, models.ColumnAxis)
	if ShowRowMeasureHeader(ct) {
		rows++
	}
	return rows, cols
}

// ShowColumnMeasureHeader reports whether measure headers occupy a header column.
func ShowColumnMeasureHeader(ct *models.Crosstab) bool {
	return !ct.HideMeasureHeader && ct.MeasureCount() != 0 && ct.MeasureDirection == models.Horizontal
}

// ShowRowMeasureHeader reports whether measure headers occupy a header row.
func ShowRowMeasureHeader(ct *models.Crosstab) bool {
	return !ct.HideMeasureHeader && ct.MeasureCount() != 0 && ct.MeasureDirection == models.Vertical
}

// CanMerge reports whether the header has more than one cell.
func CanMerge(ct *models.Crosstab) bool {
	return ct.HeaderCount() > 1
}

// CanSplit reports whether the header is a single merged cell covering more than one grid cell.
func CanSplit(ct *models.Crosstab) bool {
	rows, cols := Extent(ct)
	return ct.HeaderCount() == 1 && rows*cols > 1
}

// CellIndex maps a level position on an axis to the row-major index of its header cell.
// Column-axis levels use the last column of their row; row-axis levels use the last row.
func CellIndex(axisType models.AxisType, position, rows, cols int) int {
	switch axisType {
	case models.ColumnAxis:
		return (position+1)*cols - 1
	case models.RowAxis:
		return (rows-1)*cols + position
	default:
		return -1
	}
}
