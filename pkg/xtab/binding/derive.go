// Package binding derives the query bindings of a crosstab.
package binding

import (
	"context"
	"log/slog"

	"github.com/perNyfelt/birt/pkg/xtab/adapter"
	"github.com/perNyfelt/birt/pkg/xtab/axis"
	"github.com/perNyfelt/birt/pkg/xtab/expr"
	"github.com/perNyfelt/birt/pkg/xtab/logger"
	"github.com/perNyfelt/birt/pkg/xtab/models"
)

// Engine derives query bindings from the column bindings declared on a crosstab.
type Engine struct {
	sessions adapter.Factory
	logger   *slog.Logger
}

// New creates an Engine. A nil logger uses logger.Default().
func New(sessions adapter.Factory, log *slog.Logger) *Engine {
	if log == nil {
		log = logger.Default()
	}
	return &Engine{sessions: sessions, logger: log}
}

// Derive returns one binding per declared column binding, in declaration order, with the
// aggregate-on levels expanded along the axis each base level lives on.
//
// Axis validation errors are *models.CrosstabError; adapter errors are returned as is.
func (e *Engine) Derive(ctx context.Context, ct *models.Crosstab) (bindings []*models.Binding, err error) {
	rowLevels, err := axis.LevelNames(ct, models.RowAxis)
	if err != nil {
		return nil, err
	}
	columnLevels, err := axis.LevelNames(ct, models.ColumnAxis)
	if err != nil {
		return nil, err
	}

	session, err := e.sessions.NewSession(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil && err == nil {
			bindings, err = nil, closeErr
		}
	}()

	cache := make(map[string]string)
	bindings = make([]*models.Binding, 0, len(ct.Bindings))
	for _, column := range ct.Bindings {
		binding, err := session.AdaptBinding(column)
		if err != nil {
			return nil, err
		}
		for _, baseLevel := range column.AggregateOn {
			AddHierarchyAggregateOn(binding, column.Expression, baseLevel, rowLevels, columnLevels, cache)
		}
		bindings = append(bindings, binding)
	}
	e.logger.Debug("derived crosstab bindings", "crosstab", ct.Name, "bindings", len(bindings))
	return bindings, nil
}

// AddHierarchyAggregateOn adds the aggregate-on expressions implied by baseLevel to binding.
//
// When baseLevel is on the row levels at position i, rows[0..i] are added outermost first, and
// likewise for columns; rows take precedence. A name found on neither axis still yields one
// expression so that validation downstream can report it. cache memoizes expressions by level
// name and expression form, and should live no longer than one derivation.
func AddHierarchyAggregateOn(binding *models.Binding, expression, baseLevel string, rowLevels, columnLevels []string, cache map[string]string) {
	if binding == nil || baseLevel == "" {
		return
	}
	dataSetField := expr.IsDataSetFieldReferred(expression)

	for _, levels := range [][]string{rowLevels, columnLevels} {
		index := indexOf(levels, baseLevel)
		if index < 0 {
			continue
		}
		for _, levelName := range levels[:index+1] {
			binding.AddAggregateOn(cachedExpression(cache, levelName, dataSetField))
		}
		return
	}

	binding.AddAggregateOn(cachedExpression(cache, baseLevel, dataSetField))
}

func cachedExpression(cache map[string]string, levelName string, dataSetField bool) string {
	key := levelName
	if dataSetField {
		key = expr.DataSetRowIndicator + ":" + levelName
	}
	if cached, ok := cache[key]; ok {
		return cached
	}
	expression := aggregateLevelExpression(levelName, dataSetField)
	cache[key] = expression
	return expression
}

func aggregateLevelExpression(levelName string, dataSetField bool) string {
	dimension, level := expr.SplitLevelName(levelName)
	if dataSetField {
		return expr.DataSetRow(level)
	}
	return expr.Dimension(dimension, level)
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return -1
}
