package header

import (
	"github.com/perNyfelt/birt/pkg/xtab/i18n"
	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/pkg/errors"
)

// Merge collapses the header into its first cell, discarding the others.
// Edits are applied in one transaction: if the document rejects any removal the header is
// restored and the error returned.
func Merge(ed Editor, ct *models.Crosstab) error {
	count := ct.HeaderCount()
	if count <= 1 {
		return nil
	}
	return inTransaction(ed, ct, "merge", func() error {
		for i := 1; i < count; i++ {
			if err := ed.RemoveHeader(ct, 1); err != nil {
				return err
			}
		}
		return nil
	})
}

// Split expands a merged header into rows*cols cells. The first cell keeps its contents;
// the new cells are empty. Like Merge it is all-or-nothing.
func Split(ed Editor, f Factory, ct *models.Crosstab) error {
	if !CanSplit(ct) {
		return nil
	}
	rows, cols := Extent(ct)
	return inTransaction(ed, ct, "split", func() error {
		for i := 1; i < rows*cols; i++ {
			if err := ed.AddHeader(ct, f.NewCell()); err != nil {
				return err
			}
		}
		return nil
	})
}

// Sync grows or shrinks an unmerged header to rows*cols cells after the axes changed.
// A single-cell header is treated as merged and left alone.
func Sync(ed Editor, f Factory, ct *models.Crosstab) error {
	rows, cols := Extent(ct)
	total, count := rows*cols, ct.HeaderCount()
	if count == 1 || count == total {
		return nil
	}
	return inTransaction(ed, ct, "sync", func() error {
		for i := count; i < total; i++ {
			if err := ed.AddHeader(ct, f.NewCell()); err != nil {
				return err
			}
		}
		for i := count - 1; i >= total; i-- {
			if err := ed.RemoveHeader(ct, i); err != nil {
				return err
			}
		}
		return nil
	})
}

func inTransaction(ed Editor, ct *models.Crosstab, name string, edit func() error) error {
	tx, err := ed.Begin(ct, name)
	if err != nil {
		return errors.Wrap(err, i18n.Sprintf(i18n.HeaderEditRejected, ct.Name, name))
	}
	if err = edit(); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return errors.Wrapf(rollbackErr, "failed to roll back %s after: %v", name, err)
		}
		return errors.Wrap(err, i18n.Sprintf(i18n.HeaderEditRejected, ct.Name, name))
	}
	return tx.Commit()
}
