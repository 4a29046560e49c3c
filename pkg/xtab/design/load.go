package design

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCube indicates a crosstab naming a cube the design does not define.
var ErrUnknownCube = errors.New("unknown cube")

// Design is a report design holding cubes and the crosstabs built on them.
type Design struct {
	Cubes     []*models.Cube     `json:"cubes" yaml:"cubes"`
	Crosstabs []*models.Crosstab `json:"crosstabs" yaml:"crosstabs"`
}

// Crosstab returns the named crosstab, or the first one when name is empty.
func (d *Design) Crosstab(name string) *models.Crosstab {
	for _, ct := range d.Crosstabs {
		if name == "" || ct.Name == name {
			return ct
		}
	}
	return nil
}

// Cube returns the named cube or nil.
func (d *Design) Cube(name string) *models.Cube {
	for _, cube := range d.Cubes {
		if cube.Name == name {
			return cube
		}
	}
	return nil
}

// Resolve binds every crosstab to its cube and links its axis views.
func (d *Design) Resolve() error {
	for _, ct := range d.Crosstabs {
		ct.Cube = nil
		if ct.CubeName != "" {
			if ct.Cube = d.Cube(ct.CubeName); ct.Cube == nil {
				return errors.Wrapf(ErrUnknownCube, "crosstab %s references cube %s", ct.Name, ct.CubeName)
			}
		}
		if ct.MeasureDirection == "" {
			ct.MeasureDirection = models.Horizontal
		}
		ct.Link()
	}
	return nil
}

// Load reads a YAML or JSON design file, chosen by extension.
func Load(path string) (*Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	design, err := Decode(data, isJSON(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load design %s", path)
	}
	return design, nil
}

// Decode parses a design document.
func Decode(data []byte, asJSON bool) (*Design, error) {
	design := &Design{}
	var err error
	if asJSON {
		err = json.Unmarshal(data, design)
	} else {
		err = yaml.Unmarshal(data, design)
	}
	if err != nil {
		return nil, err
	}
	if err = design.Resolve(); err != nil {
		return nil, err
	}
	return design, nil
}

// Save writes the design back in the format chosen by extension.
func Save(path string, design *Design) error {
	var data []byte
	var err error
	if isJSON(path) {
		data, err = json.MarshalIndent(design, "", "  ")
	} else {
		data, err = yaml.Marshal(design)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to encode design %s", path)
	}
	return os.WriteFile(path, data, 0644)
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
