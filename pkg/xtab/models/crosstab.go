package models

// Crosstab is the root of a crosstab report item design.
type Crosstab struct {
	Name string `json:"name" yaml:"name"`
	// Extends names the library element this crosstab inherits from. Derived crosstabs are read-only.
	Extends           string            `json:"extends,omitempty" yaml:"extends,omitempty"`
	CubeName          string            `json:"cube,omitempty" yaml:"cube,omitempty"`
	Rows              Axis              `json:"rows" yaml:"rows"`
	Columns           Axis              `json:"columns" yaml:"columns"`
	Measures          []*MeasureView    `json:"measures,omitempty" yaml:"measures,omitempty"`
	MeasureDirection  MeasureDirection  `json:"measure_direction,omitempty" yaml:"measureDirection,omitempty"`
	HideMeasureHeader bool              `json:"hide_measure_header,omitempty" yaml:"hideMeasureHeader,omitempty"`
	Header            []*HeaderCell     `json:"header,omitempty" yaml:"header,omitempty"`
	Bindings          []*ComputedColumn `json:"bindings,omitempty" yaml:"bindings,omitempty"`

	// Cube is the resolved cube; nil when the crosstab is not bound to a cube.
	Cube *Cube `json:"-" yaml:"-"`
}

// NewCrosstab creates an empty crosstab bound to cube.
func NewCrosstab(name string, cube *Cube) *Crosstab {
	ct := &Crosstab{Name: name, Cube: cube, MeasureDirection: Horizontal}
	if cube != nil {
		ct.CubeName = cube.Name
	}
	ct.Link()
	return ct
}

// Link sets the lookup back-references of every dimension and level view.
// It must be called after a crosstab is decoded or its axes are edited directly.
func (c *Crosstab) Link() {
	c.Rows.Type = RowAxis
	c.Columns.Type = ColumnAxis
	for i, dv := range c.Rows.Dimensions {
		dv.link(c, RowAxis, i)
	}
	for i, dv := range c.Columns.Dimensions {
		dv.link(c, ColumnAxis, i)
	}
}

// Axis returns the axis of the given type or nil.
func (c *Crosstab) Axis(axisType AxisType) *Axis {
	switch axisType {
	case RowAxis:
		return &c.Rows
	case ColumnAxis:
		return &c.Columns
	}
	return nil
}

// DimensionCount returns the number of dimension views on an axis.
func (c *Crosstab) DimensionCount(axisType AxisType) int {
	axis := c.Axis(axisType)
	if axis == nil {
		return 0
	}
	return len(axis.Dimensions)
}

// Dimension returns the dimension view at index on an axis or nil.
func (c *Crosstab) Dimension(axisType AxisType, index int) *DimensionView {
	axis := c.Axis(axisType)
	if axis == nil || index < 0 || index >= len(axis.Dimensions) {
		return nil
	}
	return axis.Dimensions[index]
}

// AddDimension appends a dimension view to an axis.
func (c *Crosstab) AddDimension(axisType AxisType, dv *DimensionView) *DimensionView {
	axis := c.Axis(axisType)
	if axis == nil {
		return nil
	}
	axis.Dimensions = append(axis.Dimensions, dv)
	dv.link(c, axisType, len(axis.Dimensions)-1)
	return dv
}

// RemoveDimension removes the dimension view at index from an axis.
func (c *Crosstab) RemoveDimension(axisType AxisType, index int) {
	axis := c.Axis(axisType)
	if axis == nil || index < 0 || index >= len(axis.Dimensions) {
		return
	}
	removed := axis.Dimensions[index]
	axis.Dimensions = append(axis.Dimensions[:index], axis.Dimensions[index+1:]...)
	removed.crosstab = nil
	c.Link()
}

// AddMeasure appends a measure view.
func (c *Crosstab) AddMeasure(mv *MeasureView) *MeasureView {
	c.Measures = append(c.Measures, mv)
	return mv
}

// MeasureCount returns the number of measure views.
func (c *Crosstab) MeasureCount() int { return len(c.Measures) }

// HeaderCount returns the number of header cells.
func (c *Crosstab) HeaderCount() int { return len(c.Header) }

// HeaderCell returns the header cell at index or nil.
func (c *Crosstab) HeaderCell(index int) *HeaderCell {
	if index < 0 || index >= len(c.Header) {
		return nil
	}
	return c.Header[index]
}

// ResolveDimension returns the cube dimension referenced by dv or nil.
func (c *Crosstab) ResolveDimension(dv *DimensionView) *Dimension {
	if dv == nil {
		return nil
	}
	return c.Cube.Dimension(dv.CubeDimension)
}

// ResolveLevel returns the cube level referenced by lv or nil.
func (c *Crosstab) ResolveLevel(lv *LevelView) *Level {
	if lv == nil {
		return nil
	}
	return c.ResolveDimension(lv.dimension).Level(lv.CubeLevel)
}

// ResolveMeasure returns the cube measure referenced by mv or nil.
func (c *Crosstab) ResolveMeasure(mv *MeasureView) *CubeMeasure {
	if mv == nil {
		return nil
	}
	return c.Cube.Measure(mv.CubeMeasure)
}
