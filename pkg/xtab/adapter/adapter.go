// Package adapter turns designer column bindings into query bindings.
package adapter

import (
	"context"
	"strings"

	"github.com/perNyfelt/birt/pkg/xtab/expr"
	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/pkg/errors"
)

// ErrSessionClosed is returned by a session used after Close.
var ErrSessionClosed = errors.New("data session closed")

// Session is a scoped query-adaptation session. It must be closed once the caller is done.
type Session interface {
	// AdaptBinding converts a column binding into a query binding with an empty aggregate-on list.
	AdaptBinding(column *models.ComputedColumn) (*models.Binding, error)
	// ReferencedLevels returns the levels of the opposite edge that bindingExpr aggregates on
	// when evaluated for targetLevel.
	ReferencedLevels(targetLevel, bindingExpr string, bindings []*models.Binding, rowLevels, columnLevels []string) ([]models.DimensionLevel, error)
	Close() error
}

// Factory opens sessions.
type Factory interface {
	NewSession(ctx context.Context) (Session, error)
}

// Functions lists the aggregate functions accepted by the direct adapter.
var Functions = []string{
	"SUM", "COUNT", "COUNTDISTINCT", "AVE", "MAX", "MIN", "FIRST", "LAST",
	"MEDIAN", "MODE", "STDDEV", "VARIANCE", "RUNNINGSUM", "RUNNINGCOUNT",
	"RANK", "PERCENTRANK", "PERCENTSUM", "TOP-N", "BOTTOM-N", "NPV", "IRR",
	"MOVINGAVE", "WEIGHTEDAVE", "CONCATENATE",
}

// Direct adapts bindings in memory, for design-time presentation.
type Direct struct {
	functions map[string]bool
}

// NewDirect creates a direct adapter accepting Functions.
func NewDirect() *Direct {
	d := &Direct{functions: make(map[string]bool, len(Functions))}
	for _, fn := range Functions {
		d.functions[fn] = true
	}
	return d
}

// NewSession implements Factory.
func (d *Direct) NewSession(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &directSession{functions: d.functions}, nil
}

type directSession struct {
	functions map[string]bool
	closed    bool
}

func (s *directSession) AdaptBinding(column *models.ComputedColumn) (*models.Binding, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if column == nil {
		return nil, errors.New("column binding is nil")
	}
	if column.Name == "" {
		return nil, errors.Errorf("column binding with expression %q has no name", column.Expression)
	}
	fn := strings.ToUpper(column.AggregateFunction)
	if fn != "" && !s.functions[fn] {
		return nil, errors.Errorf("unsupported aggregate function %q on binding %q", column.AggregateFunction, column.Name)
	}
	binding := &models.Binding{
		Name:              column.Name,
		Expression:        column.Expression,
		DataType:          column.DataType,
		AggregateFunction: fn,
		Filter:            column.Filter,
	}
	if len(column.Arguments) > 0 {
		binding.Arguments = append([]string(nil), column.Arguments...)
	}
	return binding, nil
}

func (s *directSession) ReferencedLevels(targetLevel, bindingExpr string, bindings []*models.Binding, rowLevels, columnLevels []string) ([]models.DimensionLevel, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	name, ok := expr.ParseBinding(bindingExpr)
	if !ok {
		return nil, errors.Errorf("expression %q does not reference a binding", bindingExpr)
	}
	var binding *models.Binding
	for _, candidate := range bindings {
		if candidate.Name == name {
			binding = candidate
			break
		}
	}
	if binding == nil {
		return nil, errors.Errorf("binding %q not found", name)
	}

	var opposite []string
	switch {
	case contains(rowLevels, targetLevel):
		opposite = columnLevels
	case contains(columnLevels, targetLevel):
		opposite = rowLevels
	default:
		return nil, errors.Errorf("level %s is not placed on the crosstab", targetLevel)
	}

	var result []models.DimensionLevel
	for _, aggregateOn := range binding.AggregateOn {
		if !contains(opposite, aggregateOn) {
			continue
		}
		if dimension, level, ok := expr.ParseDimension(aggregateOn); ok {
			result = append(result, models.DimensionLevel{Dimension: dimension, Level: level})
		}
	}
	return result, nil
}

func (s *directSession) Close() error {
	s.closed = true
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
