package models

import "fmt"

// AxisType identifies the edge of the crosstab a dimension lives on.
type AxisType int

const (
	// NoAxis marks an element that is not placed on any axis.
	NoAxis AxisType = -1
	// RowAxis is the vertical edge of the crosstab.
	RowAxis AxisType = 0
	// ColumnAxis is the horizontal edge of the crosstab.
	ColumnAxis AxisType = 1
)

func (t AxisType) String() string {
	switch t {
	case RowAxis:
		return "row"
	case ColumnAxis:
		return "column"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t AxisType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *AxisType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "row":
		*t = RowAxis
	case "column":
		*t = ColumnAxis
	case "none", "":
		*t = NoAxis
	default:
		return fmt.Errorf("invalid axis type: %s (must be row, column or none)", text)
	}
	return nil
}

// MeasureDirection controls whether measures are laid out as extra columns or extra rows.
type MeasureDirection string

const (
	// Horizontal lays measures out as extra columns.
	Horizontal MeasureDirection = "horizontal"
	// Vertical lays measures out as extra rows.
	Vertical MeasureDirection = "vertical"
)

// Axis is an ordered sequence of dimension views.
type Axis struct {
	Type       AxisType         `json:"-" yaml:"-"`
	Dimensions []*DimensionView `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
}

// DimensionView places a cube dimension on an axis.
type DimensionView struct {
	Name          string       `json:"name,omitempty" yaml:"name,omitempty"`
	CubeDimension string       `json:"cube_dimension" yaml:"cubeDimension"`
	Levels        []*LevelView `json:"levels,omitempty" yaml:"levels,omitempty"`

	crosstab *Crosstab
	axisType AxisType
	index    int
}

// Crosstab returns the owning crosstab.
func (dv *DimensionView) Crosstab() *Crosstab { return dv.crosstab }

// AxisType returns the axis the view is placed on.
func (dv *DimensionView) AxisType() AxisType {
	if dv.crosstab == nil {
		return NoAxis
	}
	return dv.axisType
}

// Index returns the position of the view within its axis.
func (dv *DimensionView) Index() int { return dv.index }

// LevelCount returns the number of level views.
func (dv *DimensionView) LevelCount() int { return len(dv.Levels) }

// Level returns the level view at index or nil.
func (dv *DimensionView) Level(index int) *LevelView {
	if index < 0 || index >= len(dv.Levels) {
		return nil
	}
	return dv.Levels[index]
}

// AddLevel appends a level view.
func (dv *DimensionView) AddLevel(lv *LevelView) *LevelView {
	lv.dimension = dv
	lv.index = len(dv.Levels)
	dv.Levels = append(dv.Levels, lv)
	return lv
}

// RemoveLevel removes the level view at index.
func (dv *DimensionView) RemoveLevel(index int) {
	if index < 0 || index >= len(dv.Levels) {
		return
	}
	dv.Levels = append(dv.Levels[:index], dv.Levels[index+1:]...)
	dv.link(dv.crosstab, dv.axisType, dv.index)
}

func (dv *DimensionView) link(ct *Crosstab, axisType AxisType, index int) {
	dv.crosstab = ct
	dv.axisType = axisType
	dv.index = index
	for i, lv := range dv.Levels {
		lv.dimension = dv
		lv.index = i
	}
}

// LevelView places a cube level of the view's dimension on an axis.
type LevelView struct {
	CubeLevel    string `json:"cube_level" yaml:"cubeLevel"`
	DisplayField string `json:"display_field,omitempty" yaml:"displayField,omitempty"`

	dimension *DimensionView
	index     int
}

// Dimension returns the owning dimension view.
func (lv *LevelView) Dimension() *DimensionView { return lv.dimension }

// Index returns the position of the level within its dimension view.
func (lv *LevelView) Index() int { return lv.index }

// AxisType returns the axis the level is placed on.
func (lv *LevelView) AxisType() AxisType {
	if lv.dimension == nil {
		return NoAxis
	}
	return lv.dimension.AxisType()
}

// Crosstab returns the owning crosstab.
func (lv *LevelView) Crosstab() *Crosstab {
	if lv.dimension == nil {
		return nil
	}
	return lv.dimension.crosstab
}

// MeasureView places a cube measure in the crosstab cells.
type MeasureView struct {
	CubeMeasure string `json:"cube_measure" yaml:"cubeMeasure"`
	Function    string `json:"function,omitempty" yaml:"function,omitempty"`
}
