package axis

import "github.com/perNyfelt/birt/pkg/xtab/models"

// DefaultAggregationFunction is used when neither the measure view nor the cube measure names one.
const DefaultAggregationFunction = "SUM"

// CanContainDimension reports whether dim may be dropped onto the crosstab from outside.
// A dimension of another cube, or one already placed on either axis, is rejected.
func CanContainDimension(ct *models.Crosstab, dim *models.Dimension) bool {
	if ct == nil || dim == nil || ct.Extends != "" {
		return false
	}
	if ct.Cube == nil {
		return true
	}
	if !containsDimension(ct.Cube, dim) {
		return false
	}
	for _, axisType := range []models.AxisType{models.RowAxis, models.ColumnAxis} {
		for i := 0; i < ct.DimensionCount(axisType); i++ {
			if ct.ResolveDimension(ct.Dimension(axisType, i)) == dim {
				return false
			}
		}
	}
	return true
}

// CanContainMeasure reports whether m may be dropped onto the crosstab from outside.
func CanContainMeasure(ct *models.Crosstab, m *models.CubeMeasure) bool {
	if ct == nil || m == nil || ct.Extends != "" {
		return false
	}
	if ct.Cube == nil {
		return true
	}
	if !containsMeasure(ct.Cube, m) {
		return false
	}
	for _, mv := range ct.Measures {
		if ct.ResolveMeasure(mv) == m {
			return false
		}
	}
	return true
}

// CanContainMeasureGroup reports whether a measure group may be dropped onto the crosstab.
func CanContainMeasureGroup(ct *models.Crosstab) bool {
	return ct != nil && ct.Extends == ""
}

// AggregationAffectsAllMeasures reports whether adding or removing an aggregation on
// axisType applies to every measure at once.
func AggregationAffectsAllMeasures(ct *models.Crosstab, axisType models.AxisType) bool {
	return (ct.MeasureDirection == models.Horizontal && axisType == models.RowAxis) ||
		(ct.MeasureDirection == models.Vertical && axisType == models.ColumnAxis)
}

// AggregationFunction returns the function used to aggregate mv.
func AggregationFunction(ct *models.Crosstab, mv *models.MeasureView) string {
	if mv.Function != "" {
		return mv.Function
	}
	if m := ct.ResolveMeasure(mv); m != nil && m.Function != "" {
		return m.Function
	}
	return DefaultAggregationFunction
}

func containsDimension(cube *models.Cube, dim *models.Dimension) bool {
	for _, d := range cube.Dimensions {
		if d == dim {
			return true
		}
	}
	return false
}

func containsMeasure(cube *models.Cube, m *models.CubeMeasure) bool {
	for _, g := range cube.MeasureGroups {
		for _, candidate := range g.Measures {
			if candidate == m {
				return true
			}
		}
	}
	return false
}
