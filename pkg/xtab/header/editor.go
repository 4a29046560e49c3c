// Package header lays out the header region of a crosstab.
package header

import "github.com/perNyfelt/birt/pkg/xtab/models"

// Editor applies header edits to the host document. Rejected edits return an error
// wrapping models.ErrStructuralEditRejected or models.ErrLabelWriteFailed.
type Editor interface {
	RemoveHeader(ct *models.Crosstab, index int) error
	AddHeader(ct *models.Crosstab, cell *models.HeaderCell) error
	AddContent(ct *models.Crosstab, cell *models.HeaderCell, content *models.Content) error
	SetText(ct *models.Crosstab, content *models.Content, text string) error
	// Begin starts a transaction grouping the following edits of ct.
	Begin(ct *models.Crosstab, name string) (Transaction, error)
}

// Transaction groups edits so they can be undone together.
type Transaction interface {
	Commit() error
	Rollback() error
}

// Factory creates new report elements.
type Factory interface {
	NewLabel(name string) *models.Content
	NewCell() *models.HeaderCell
}
