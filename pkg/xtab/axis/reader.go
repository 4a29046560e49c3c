// Package axis reads the row and column structure of a crosstab.
package axis

import (
	"github.com/perNyfelt/birt/pkg/xtab/expr"
	"github.com/perNyfelt/birt/pkg/xtab/i18n"
	"github.com/perNyfelt/birt/pkg/xtab/models"
)

// Opposite returns the other edge of the crosstab, or NoAxis.
func Opposite(axisType models.AxisType) models.AxisType {
	switch axisType {
	case models.ColumnAxis:
		return models.RowAxis
	case models.RowAxis:
		return models.ColumnAxis
	default:
		return models.NoAxis
	}
}

// LevelNames returns the full names of the levels on an axis, outermost first.
// It fails when a dimension or level view cannot be resolved against the cube.
func LevelNames(ct *models.Crosstab, axisType models.AxisType) ([]string, error) {
	var names []string
	err := walk(ct, axisType, func(dim *models.Dimension, level *models.Level) {
		names = append(names, models.FullLevelName(dim.Name, level.Name))
	})
	return names, err
}

// LevelExpressions returns the dimension expression of every level on an axis, outermost first.
func LevelExpressions(ct *models.Crosstab, axisType models.AxisType) ([]string, error) {
	var expressions []string
	err := walk(ct, axisType, func(dim *models.Dimension, level *models.Level) {
		expressions = append(expressions, expr.Dimension(dim.Name, level.Name))
	})
	return expressions, err
}

func walk(ct *models.Crosstab, axisType models.AxisType, visit func(dim *models.Dimension, level *models.Level)) error {
	for i := 0; i < ct.DimensionCount(axisType); i++ {
		dv := ct.Dimension(axisType, i)
		dim := ct.ResolveDimension(dv)
		if dim == nil {
			return invalidDimension(dv, axisType)
		}
		for j := 0; j < dv.LevelCount(); j++ {
			lv := dv.Level(j)
			level := dim.Level(lv.CubeLevel)
			if level == nil {
				return invalidLevel(lv, axisType)
			}
			visit(dim, level)
		}
	}
	return nil
}

func invalidDimension(dv *models.DimensionView, axisType models.AxisType) error {
	key := i18n.InvalidDimensionRow
	if axisType == models.ColumnAxis {
		key = i18n.InvalidDimensionColumn
	}
	element := dv.Name
	if element == "" {
		element = dv.CubeDimension
	}
	return models.NewCrosstabError(element, axisType, i18n.Sprintf(key, dv.CubeDimension), models.ErrInvalidAxisStructure)
}

func invalidLevel(lv *models.LevelView, axisType models.AxisType) error {
	key := i18n.InvalidLevelRow
	if axisType == models.ColumnAxis {
		key = i18n.InvalidLevelColumn
	}
	return models.NewCrosstabError(lv.CubeLevel, axisType, i18n.Sprintf(key, lv.CubeLevel), models.ErrInvalidAxisStructure)
}

// LevelList returns the level views on an axis in traversal order.
func LevelList(ct *models.Crosstab, axisType models.AxisType) []*models.LevelView {
	var levels []*models.LevelView
	for i := 0; i < ct.DimensionCount(axisType); i++ {
		levels = append(levels, ct.Dimension(axisType, i).Levels...)
	}
	return levels
}

// LevelCount returns the number of level views on an axis.
func LevelCount(ct *models.Crosstab, axisType models.AxisType) int {
	count := 0
	for i := 0; i < ct.DimensionCount(axisType); i++ {
		count += ct.Dimension(axisType, i).LevelCount()
	}
	return count
}

// PriorLevelCount returns the number of levels on the same axis before dv.
func PriorLevelCount(dv *models.DimensionView) int {
	ct := dv.Crosstab()
	if ct == nil {
		return 0
	}
	count := 0
	for i := 0; i < dv.Index(); i++ {
		count += ct.Dimension(dv.AxisType(), i).LevelCount()
	}
	return count
}

// PreviousLevel returns the level before lv in traversal order of its axis, or nil for the first level.
func PreviousLevel(lv *models.LevelView) *models.LevelView {
	dv := lv.Dimension()
	if dv == nil {
		return nil
	}
	if lv.Index() != 0 {
		return dv.Level(lv.Index() - 1)
	}
	ct := dv.Crosstab()
	if ct == nil || dv.Index() == 0 {
		return nil
	}
	prev := ct.Dimension(dv.AxisType(), dv.Index()-1)
	return prev.Level(prev.LevelCount() - 1)
}

// DimensionViewByName finds the view of the named cube dimension, searching rows before columns.
func DimensionViewByName(ct *models.Crosstab, dimensionName string) *models.DimensionView {
	for _, axisType := range []models.AxisType{models.RowAxis, models.ColumnAxis} {
		for i := 0; i < ct.DimensionCount(axisType); i++ {
			dv := ct.Dimension(axisType, i)
			if dim := ct.ResolveDimension(dv); dim != nil && dim.Name == dimensionName {
				return dv
			}
		}
	}
	return nil
}
