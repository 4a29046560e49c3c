package binding

import (
	"context"

	"github.com/perNyfelt/birt/pkg/xtab/axis"
	"github.com/perNyfelt/birt/pkg/xtab/expr"
	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/pkg/errors"
)

// ReferencedLevels returns the levels of the opposite edge that the binding referenced by
// bindingExpr aggregates on, evaluated for level. It is advisory: any failure is logged and
// an empty result returned.
func (e *Engine) ReferencedLevels(ctx context.Context, level *models.LevelView, bindingExpr string) []models.DimensionLevel {
	ct := level.Crosstab()
	if ct == nil {
		return nil
	}
	cubeLevel := ct.ResolveLevel(level)
	if cubeLevel == nil {
		return nil
	}
	dimension := ct.ResolveDimension(level.Dimension())
	target := expr.Dimension(dimension.Name, cubeLevel.Name)

	levels, err := e.referencedLevels(ctx, ct, target, bindingExpr)
	if err != nil {
		e.logger.Warn("failed to resolve referenced levels",
			"crosstab", ct.Name, "cube_level", target, "binding", bindingExpr, "error", err)
		return nil
	}
	return levels
}

func (e *Engine) referencedLevels(ctx context.Context, ct *models.Crosstab, target, bindingExpr string) ([]models.DimensionLevel, error) {
	bindings, err := e.Derive(ctx, ct)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive bindings")
	}
	rowLevels, err := axis.LevelExpressions(ct, models.RowAxis)
	if err != nil {
		return nil, err
	}
	columnLevels, err := axis.LevelExpressions(ct, models.ColumnAxis)
	if err != nil {
		return nil, err
	}

	session, err := e.sessions.NewSession(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close()
	return session.ReferencedLevels(target, bindingExpr, bindings, rowLevels, columnLevels)
}
