package header

import (
	"log/slog"

	"github.com/perNyfelt/birt/pkg/xtab/axis"
	"github.com/perNyfelt/birt/pkg/xtab/logger"
	"github.com/perNyfelt/birt/pkg/xtab/models"
)

// Placer writes level labels into header cells.
type Placer struct {
	editor  Editor
	factory Factory
	logger  *slog.Logger
}

// NewPlacer creates a Placer. A nil logger uses logger.Default().
func NewPlacer(ed Editor, f Factory, log *slog.Logger) *Placer {
	if log == nil {
		log = logger.Default()
	}
	return &Placer{editor: ed, factory: f, logger: log}
}

// PlaceAll places the label of every row level, then of every column level.
func (p *Placer) PlaceAll(ct *models.Crosstab) {
	for _, axisType := range []models.AxisType{models.RowAxis, models.ColumnAxis} {
		for _, lv := range axis.LevelList(ct, axisType) {
			p.PlaceLabel(lv)
		}
	}
}

// PlaceLabel writes the label of lv into its header cell when the cell is empty, or
// overwrites an existing label when the layout forces it. Placement is best effort:
// rejected writes are logged and ignored.
func (p *Placer) PlaceLabel(lv *models.LevelView) {
	ct := lv.Crosstab()
	if ct == nil {
		return
	}
	axisType := lv.AxisType()
	position := axis.PriorLevelCount(lv.Dimension()) + lv.Index()
	rows, cols := Extent(ct)

	force := false
	switch {
	case axisType == models.ColumnAxis && !ShowColumnMeasureHeader(ct) && position == rows-1:
		if prev := axis.PreviousLevel(lv); prev != nil {
			p.PlaceLabel(prev)
		}
		if axis.LevelCount(ct, models.RowAxis) != 0 {
			if ct.MeasureDirection != models.Vertical || ct.MeasureCount() == 0 || ct.HideMeasureHeader {
				return
			}
			force = true
		}
	case axisType == models.RowAxis && rows*cols == 1:
		force = true
	}

	cell := ct.HeaderCell(CellIndex(axisType, position, rows, cols))
	if cell == nil {
		return
	}
	text, ok := labelText(ct, lv)
	if !ok {
		p.logger.Debug("skipped header label for unresolved level", "crosstab", ct.Name, "cube_level", lv.CubeLevel)
		return
	}

	if len(cell.Contents) == 0 {
		label := p.factory.NewLabel("")
		if err := p.editor.SetText(ct, label, text); err != nil {
			p.ignore(ct, lv, err)
			return
		}
		if err := p.editor.AddContent(ct, cell, label); err != nil {
			p.ignore(ct, lv, err)
		}
		return
	}
	if force && cell.Contents[0].IsLabel() {
		if err := p.editor.SetText(ct, cell.Contents[0], text); err != nil {
			p.ignore(ct, lv, err)
		}
	}
}

func (p *Placer) ignore(ct *models.Crosstab, lv *models.LevelView, err error) {
	p.logger.Debug("header label not written", "crosstab", ct.Name, "cube_level", lv.CubeLevel, "error", err)
}

func labelText(ct *models.Crosstab, lv *models.LevelView) (string, bool) {
	if lv.DisplayField != "" {
		return lv.DisplayField, true
	}
	level := ct.ResolveLevel(lv)
	if level == nil {
		return "", false
	}
	return level.Name, true
}
