// Package design is an in-memory report design document hosting crosstabs.
package design

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/perNyfelt/birt/pkg/xtab/header"
	"github.com/perNyfelt/birt/pkg/xtab/i18n"
	"github.com/perNyfelt/birt/pkg/xtab/logger"
	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/pkg/errors"
	"github.com/tiendc/go-deepcopy"
)

// PropertyValueError reports an edit the document refused.
type PropertyValueError struct {
	Element  string
	Property string
	Index    int
	Reason   string
	Err      error
}

func (e *PropertyValueError) Error() string {
	return fmt.Sprintf("invalid value for property %q of %q at %d: %s", e.Property, e.Element, e.Index, e.Reason)
}

func (e *PropertyValueError) Unwrap() error {
	return e.Err
}

// Property names.
const (
	HeaderProp  = "header"
	ContentProp = "content"
	TextProp    = "text"
)

var (
	_ header.Editor  = (*Document)(nil)
	_ header.Factory = Factory{}
)

// Document applies header edits to crosstabs held in memory.
type Document struct {
	logger *slog.Logger
}

// NewDocument creates a Document. A nil logger uses logger.Default().
func NewDocument(log *slog.Logger) *Document {
	if log == nil {
		log = logger.Default()
	}
	return &Document{logger: log}
}

// RemoveHeader implements header.Editor.
func (d *Document) RemoveHeader(ct *models.Crosstab, index int) error {
	if err := d.checkWritable(ct, HeaderProp, index, models.ErrStructuralEditRejected); err != nil {
		return err
	}
	if index < 0 || index >= len(ct.Header) {
		return rejected(ct.Name, HeaderProp, index, fmt.Sprintf("index out of range [0, %d)", len(ct.Header)), models.ErrStructuralEditRejected)
	}
	ct.Header = append(ct.Header[:index], ct.Header[index+1:]...)
	d.logger.Debug("removed header cell", "crosstab", ct.Name, "index", index)
	return nil
}

// AddHeader implements header.Editor.
func (d *Document) AddHeader(ct *models.Crosstab, cell *models.HeaderCell) error {
	index := len(ct.Header)
	if err := d.checkWritable(ct, HeaderProp, index, models.ErrStructuralEditRejected); err != nil {
		return err
	}
	if cell == nil {
		return rejected(ct.Name, HeaderProp, index, "cell is nil", models.ErrStructuralEditRejected)
	}
	if indexOfCell(ct, cell) >= 0 {
		return rejected(ct.Name, HeaderProp, index, "cell is already in the header", models.ErrStructuralEditRejected)
	}
	ct.Header = append(ct.Header, cell)
	d.logger.Debug("added header cell", "crosstab", ct.Name, "index", index)
	return nil
}

// AddContent implements header.Editor.
func (d *Document) AddContent(ct *models.Crosstab, cell *models.HeaderCell, content *models.Content) error {
	index := indexOfCell(ct, cell)
	if err := d.checkWritable(ct, ContentProp, index, models.ErrLabelWriteFailed); err != nil {
		return err
	}
	if index < 0 {
		return rejected(ct.Name, ContentProp, index, "cell is not in the header", models.ErrLabelWriteFailed)
	}
	if content == nil {
		return rejected(ct.Name, ContentProp, index, "content is nil", models.ErrLabelWriteFailed)
	}
	cell.Contents = append(cell.Contents, content)
	return nil
}

// SetText implements header.Editor.
func (d *Document) SetText(ct *models.Crosstab, content *models.Content, text string) error {
	if err := d.checkWritable(ct, TextProp, -1, models.ErrLabelWriteFailed); err != nil {
		return err
	}
	if content == nil {
		return rejected(ct.Name, TextProp, -1, "content is nil", models.ErrLabelWriteFailed)
	}
	if content.Type == models.DataContent {
		return rejected(ct.Name, TextProp, -1, "data items have no text", models.ErrLabelWriteFailed)
	}
	content.Text = text
	return nil
}

// Begin implements header.Editor. Rollback restores the header to the cells it held at Begin:
// the same cell and content pointers, with content fields reset from a deep copy.
func (d *Document) Begin(ct *models.Crosstab, name string) (header.Transaction, error) {
	cells := make([]cellSnapshot, 0, len(ct.Header))
	for _, cell := range ct.Header {
		if cell == nil {
			cells = append(cells, cellSnapshot{})
			continue
		}
		var values []*models.Content
		if err := deepcopy.Copy(&values, cell.Contents); err != nil {
			return nil, errors.Wrapf(err, "failed to snapshot header of %s", ct.Name)
		}
		cells = append(cells, cellSnapshot{
			cell:     cell,
			contents: append([]*models.Content(nil), cell.Contents...),
			values:   values,
		})
	}
	return &transaction{doc: d, ct: ct, name: name, cells: cells}, nil
}

func (d *Document) checkWritable(ct *models.Crosstab, property string, index int, kind error) error {
	if ct.Extends == "" {
		return nil
	}
	return rejected(ct.Name, property, index, i18n.Sprintf(i18n.ReadOnlyElement, ct.Name, ct.Extends), kind)
}

func rejected(element, property string, index int, reason string, kind error) error {
	return &PropertyValueError{Element: element, Property: property, Index: index, Reason: reason, Err: kind}
}

func indexOfCell(ct *models.Crosstab, cell *models.HeaderCell) int {
	for i, candidate := range ct.Header {
		if candidate == cell {
			return i
		}
	}
	return -1
}

type cellSnapshot struct {
	cell     *models.HeaderCell
	contents []*models.Content
	values   []*models.Content
}

func (s cellSnapshot) restore() *models.HeaderCell {
	if s.cell == nil {
		return nil
	}
	s.cell.Contents = s.contents
	for i, content := range s.contents {
		if content != nil && s.values[i] != nil {
			*content = *s.values[i]
		}
	}
	return s.cell
}

type transaction struct {
	doc   *Document
	ct    *models.Crosstab
	name  string
	cells []cellSnapshot
	done  bool
}

func (t *transaction) Commit() error {
	if t.done {
		return errors.Errorf("transaction %s already finished", t.name)
	}
	t.done = true
	t.doc.logger.Debug("committed header edit", "crosstab", t.ct.Name, "edit", t.name, "cells", len(t.ct.Header))
	return nil
}

func (t *transaction) Rollback() error {
	if t.done {
		return errors.Errorf("transaction %s already finished", t.name)
	}
	t.done = true
	restored := make([]*models.HeaderCell, 0, len(t.cells))
	for _, snapshot := range t.cells {
		restored = append(restored, snapshot.restore())
	}
	t.ct.Header = restored
	t.doc.logger.Debug("rolled back header edit", "crosstab", t.ct.Name, "edit", t.name, "cells", len(t.ct.Header))
	return nil
}

// Factory creates elements with unique ids.
type Factory struct{}

// NewLabel implements header.Factory.
func (Factory) NewLabel(name string) *models.Content {
	return &models.Content{ID: uuid.NewString(), Type: models.LabelContent, Name: name}
}

// NewCell implements header.Factory.
func (Factory) NewCell() *models.HeaderCell {
	return &models.HeaderCell{ID: uuid.NewString()}
}
