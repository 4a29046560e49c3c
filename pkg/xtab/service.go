package xtab

import (
	"context"
	"log/slog"
	"os"

	"github.com/perNyfelt/birt/pkg/xtab/adapter"
	"github.com/perNyfelt/birt/pkg/xtab/binding"
	"github.com/perNyfelt/birt/pkg/xtab/design"
	"github.com/perNyfelt/birt/pkg/xtab/header"
	"github.com/perNyfelt/birt/pkg/xtab/i18n"
	"github.com/perNyfelt/birt/pkg/xtab/logger"
	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/pkg/errors"
)

// Service runs crosstab operations against designs held in memory.
type Service struct {
	opts    Options
	logger  *slog.Logger
	editor  header.Editor
	factory header.Factory
	engine  *binding.Engine
	placer  *header.Placer
}

// HeaderInfo describes the header grid of a crosstab.
type HeaderInfo struct {
	Crosstab string               `json:"crosstab"`
	Rows     int                  `json:"rows"`
	Cols     int                  `json:"cols"`
	Cells    int                  `json:"cells"`
	CanMerge bool                 `json:"can_merge"`
	CanSplit bool                 `json:"can_split"`
	Header   []*models.HeaderCell `json:"header"`
}

// New creates a Service using the in-memory document and the direct binding adapter.
// The locale of opts applies process-wide.
func New(opts Options, log *slog.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	i18n.SetLocale(opts.Locale)
	doc := design.NewDocument(log)
	factory := design.Factory{}
	return &Service{
		opts:    opts,
		logger:  log,
		editor:  doc,
		factory: factory,
		engine:  binding.New(adapter.NewDirect(), log),
		placer:  header.NewPlacer(doc, factory, log),
	}
}

// Options returns the options the service was created with.
func (s *Service) Options() Options {
	return s.opts
}

// Open loads a design file and returns the named crosstab, or the first one when name is empty.
func (s *Service) Open(path, name string) (*design.Design, *models.Crosstab, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, NewLoadError(path, "design", ErrFileNotFound)
	}
	d, err := design.Load(path)
	if err != nil {
		return nil, nil, NewLoadError(path, "design", err)
	}
	ct := d.Crosstab(name)
	if ct == nil {
		return nil, nil, NewLoadError(path, "design", errors.Wrapf(ErrCrosstabNotFound, "crosstab %q", name))
	}
	s.logger.Debug("opened design", "path", path, "crosstab", ct.Name, "crosstabs", len(d.Crosstabs))
	return d, ct, nil
}

// Bindings derives the query bindings of ct.
func (s *Service) Bindings(ctx context.Context, ct *models.Crosstab) ([]*models.Binding, error) {
	return s.engine.Derive(ctx, ct)
}

// ReferencedLevels returns the levels on the edge opposite lv referenced by a binding expression.
func (s *Service) ReferencedLevels(ctx context.Context, lv *models.LevelView, bindingExpr string) []models.DimensionLevel {
	return s.engine.ReferencedLevels(ctx, lv, bindingExpr)
}

// Header describes the header grid of ct.
func (s *Service) Header(ct *models.Crosstab) HeaderInfo {
	rows, cols := header.Extent(ct)
	return HeaderInfo{
		Crosstab: ct.Name,
		Rows:     rows,
		Cols:     cols,
		Cells:    rows * cols,
		CanMerge: header.CanMerge(ct),
		CanSplit: header.CanSplit(ct),
		Header:   ct.Header,
	}
}

// PlaceLabels brings the header to rows*cols cells and places every level label.
// Placement is best effort: a rejected resize is logged and labels go into the cells that exist.
func (s *Service) PlaceLabels(ct *models.Crosstab) error {
	if err := header.Sync(s.editor, s.factory, ct); err != nil {
		s.logger.Warn("header not resized before placing labels", "crosstab", ct.Name, "cells", ct.HeaderCount(), "error", err)
	}
	s.placer.PlaceAll(ct)
	return nil
}

// Merge collapses the header of ct into one cell.
func (s *Service) Merge(ct *models.Crosstab) error {
	if !header.CanMerge(ct) {
		s.logger.Info("header is already merged", "crosstab", ct.Name, "cells", ct.HeaderCount())
		return nil
	}
	return header.Merge(s.editor, ct)
}

// Split expands a merged header of ct into rows*cols cells.
func (s *Service) Split(ct *models.Crosstab) error {
	if !header.CanSplit(ct) {
		s.logger.Info("header cannot be split", "crosstab", ct.Name, "cells", ct.HeaderCount())
		return nil
	}
	return header.Split(s.editor, s.factory, ct)
}
