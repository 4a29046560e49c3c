package models_test

import (
	"testing"

	"github.com/perNyfelt/birt/internal/fixture"
	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCrosstab_Link(t *testing.T) {
	ct := fixture.Crosstab(
		[]fixture.Dim{{Name: "Geo", Levels: []string{"Region", "Country"}}},
		[]fixture.Dim{{Name: "Time", Levels: []string{"Year"}}, {Name: "Product", Levels: []string{"Line"}}},
	)

	line := fixture.Level(ct, models.ColumnAxis, 1)
	require.NotNil(t, line)
	assert.Equal(t, "Line", line.CubeLevel)
	assert.Same(t, ct, line.Crosstab())
	assert.Equal(t, models.ColumnAxis, line.AxisType())
	assert.Equal(t, 1, line.Dimension().Index())
	assert.Equal(t, 0, line.Index())

	ct.RemoveDimension(models.ColumnAxis, 0)
	assert.Equal(t, 0, line.Dimension().Index())
	assert.Equal(t, 1, ct.DimensionCount(models.ColumnAxis))

	ct.RemoveDimension(models.ColumnAxis, 5)
	assert.Equal(t, 1, ct.DimensionCount(models.ColumnAxis))
	assert.Nil(t, ct.AddDimension(models.NoAxis, &models.DimensionView{}))
	assert.Nil(t, ct.Dimension(models.RowAxis, 3))
}

func TestCrosstab_Resolve(t *testing.T) {
	ct := fixture.Crosstab(
		[]fixture.Dim{{Name: "Geo", Levels: []string{"Region", "Planet"}}, {Name: "Weather", Levels: []string{"Rain"}}},
		nil,
		"Revenue", "Margin",
	)

	assert.Equal(t, "Region", ct.ResolveLevel(fixture.Level(ct, models.RowAxis, 0)).Name)
	assert.Nil(t, ct.ResolveLevel(fixture.Level(ct, models.RowAxis, 1)))
	assert.Nil(t, ct.ResolveDimension(ct.Dimension(models.RowAxis, 1)))
	assert.Nil(t, ct.ResolveLevel(fixture.Level(ct, models.RowAxis, 2)))
	assert.Equal(t, "SUM", ct.ResolveMeasure(ct.Measures[0]).Function)
	assert.Nil(t, ct.ResolveMeasure(ct.Measures[1]))

	unbound := models.NewCrosstab("unbound", nil)
	assert.Nil(t, unbound.ResolveMeasure(&models.MeasureView{CubeMeasure: "Revenue"}))
	assert.Equal(t, models.Horizontal, unbound.MeasureDirection)
}

func TestDimensionView_RemoveLevel(t *testing.T) {
	ct := fixture.Crosstab([]fixture.Dim{{Name: "Geo", Levels: []string{"Region", "Country", "City"}}}, nil)
	dv := ct.Dimension(models.RowAxis, 0)
	city := dv.Level(2)

	dv.RemoveLevel(1)
	assert.Equal(t, 2, dv.LevelCount())
	assert.Equal(t, 1, city.Index())
	assert.Nil(t, dv.Level(2))
}

func TestBinding_AddAggregateOn(t *testing.T) {
	b := &models.Binding{Name: "total"}
	b.AddAggregateOn("a")
	b.AddAggregateOn("b")
	b.AddAggregateOn("a")
	assert.Equal(t, []string{"a", "b"}, b.AggregateOn)
}

func TestAxisType_Text(t *testing.T) {
	for _, axisType := range []models.AxisType{models.RowAxis, models.ColumnAxis, models.NoAxis} {
		text, err := axisType.MarshalText()
		require.NoError(t, err)
		var decoded models.AxisType
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, axisType, decoded)
	}

	var decoded models.AxisType
	assert.Error(t, yaml.Unmarshal([]byte("diagonal"), &decoded))
}

func TestHeaderCell_Text(t *testing.T) {
	var cell *models.HeaderCell
	assert.Equal(t, "", cell.Text())

	cell = &models.HeaderCell{Contents: []*models.Content{{Type: models.LabelContent, Text: "Region"}}}
	assert.Equal(t, "Region", cell.Text())
	assert.True(t, cell.Contents[0].IsLabel())
	assert.False(t, (&models.Content{Type: models.DataContent}).IsLabel())

	ct := models.NewCrosstab("x", nil)
	ct.Header = []*models.HeaderCell{cell}
	assert.Same(t, cell, ct.HeaderCell(0))
	assert.Nil(t, ct.HeaderCell(1))
	assert.Nil(t, ct.HeaderCell(-1))
}

func TestArea_Cells(t *testing.T) {
	assert.Equal(t, 6, models.Area{R1: 1, C1: 1, R2: 2, C2: 3}.Cells())
	assert.Equal(t, 0, models.Area{R1: 2, C1: 1, R2: 1, C2: 3}.Cells())
}
