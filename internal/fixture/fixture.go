// Package fixture builds crosstab designs for tests.
package fixture

import "github.com/perNyfelt/birt/pkg/xtab/models"

// Dim describes a dimension view placed on an axis.
type Dim struct {
	Name   string
	Levels []string
}

// SalesCube returns a cube with Geo, Time and Product dimensions and Revenue and Units measures.
func SalesCube() *models.Cube {
	return &models.Cube{
		Name: "Sales",
		Dimensions: []*models.Dimension{
			dimension("Geo", "Region", "Country", "City"),
			dimension("Time", "Year", "Quarter", "Month"),
			dimension("Product", "Line", "Name"),
		},
		MeasureGroups: []*models.MeasureGroup{
			{
				Name: "Facts",
				Measures: []*models.CubeMeasure{
					{Name: "Revenue", Function: "SUM", DataType: "decimal"},
					{Name: "Units", Function: "COUNT", DataType: "integer"},
				},
			},
		},
	}
}

func dimension(name string, levels ...string) *models.Dimension {
	dim := &models.Dimension{Name: name}
	for _, level := range levels {
		dim.Levels = append(dim.Levels, &models.Level{Name: level, DataType: "string"})
	}
	return dim
}

// Crosstab builds a crosstab over SalesCube with the given axes and measures.
func Crosstab(rows, columns []Dim, measures ...string) *models.Crosstab {
	ct := models.NewCrosstab("crosstab", SalesCube())
	place(ct, models.RowAxis, rows)
	place(ct, models.ColumnAxis, columns)
	for _, m := range measures {
		ct.AddMeasure(&models.MeasureView{CubeMeasure: m})
	}
	return ct
}

func place(ct *models.Crosstab, axisType models.AxisType, dims []Dim) {
	for _, d := range dims {
		dv := ct.AddDimension(axisType, &models.DimensionView{CubeDimension: d.Name})
		for _, level := range d.Levels {
			dv.AddLevel(&models.LevelView{CubeLevel: level})
		}
	}
}

// EmptyHeader replaces the header with n empty cells.
func EmptyHeader(ct *models.Crosstab, n int) {
	ct.Header = nil
	for i := 0; i < n; i++ {
		ct.Header = append(ct.Header, &models.HeaderCell{})
	}
}

// Level returns the level view at index on an axis.
func Level(ct *models.Crosstab, axisType models.AxisType, index int) *models.LevelView {
	count := 0
	for i := 0; i < ct.DimensionCount(axisType); i++ {
		dv := ct.Dimension(axisType, i)
		if index < count+dv.LevelCount() {
			return dv.Level(index - count)
		}
		count += dv.LevelCount()
	}
	return nil
}
