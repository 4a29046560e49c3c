package models

// Cube is the OLAP cube a crosstab is built on.
type Cube struct {
	Name          string          `json:"name" yaml:"name"`
	Dimensions    []*Dimension    `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	MeasureGroups []*MeasureGroup `json:"measure_groups,omitempty" yaml:"measureGroups,omitempty"`
}

// Dimension is a cube dimension with its ordered levels.
type Dimension struct {
	Name   string   `json:"name" yaml:"name"`
	Levels []*Level `json:"levels,omitempty" yaml:"levels,omitempty"`
}

// Level is a cube level.
type Level struct {
	Name     string `json:"name" yaml:"name"`
	DataType string `json:"data_type,omitempty" yaml:"dataType,omitempty"`
}

// MeasureGroup groups cube measures.
type MeasureGroup struct {
	Name     string         `json:"name" yaml:"name"`
	Measures []*CubeMeasure `json:"measures,omitempty" yaml:"measures,omitempty"`
}

// CubeMeasure is a cube measure.
type CubeMeasure struct {
	Name     string `json:"name" yaml:"name"`
	Function string `json:"function,omitempty" yaml:"function,omitempty"`
	DataType string `json:"data_type,omitempty" yaml:"dataType,omitempty"`
}

// Dimension returns the named dimension or nil.
func (c *Cube) Dimension(name string) *Dimension {
	if c == nil {
		return nil
	}
	for _, d := range c.Dimensions {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// Measure returns the named measure or nil.
func (c *Cube) Measure(name string) *CubeMeasure {
	if c == nil {
		return nil
	}
	for _, g := range c.MeasureGroups {
		for _, m := range g.Measures {
			if m.Name == name {
				return m
			}
		}
	}
	return nil
}

// Level returns the named level or nil.
func (d *Dimension) Level(name string) *Level {
	if d == nil {
		return nil
	}
	for _, l := range d.Levels {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// FullLevelName joins a dimension and level name into "dimension/level".
func FullLevelName(dimension, level string) string {
	return dimension + "/" + level
}

// DimensionLevel identifies a level by its dimension and level names.
type DimensionLevel struct {
	Dimension string `json:"dimension"`
	Level     string `json:"level"`
}
