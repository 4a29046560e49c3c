package header_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/perNyfelt/birt/internal/fixture"
	"github.com/perNyfelt/birt/pkg/xtab/design"
	"github.com/perNyfelt/birt/pkg/xtab/header"
	"github.com/perNyfelt/birt/pkg/xtab/logger"
	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(ct *models.Crosstab) []string {
	var result []string
	for _, cell := range ct.Header {
		result = append(result, cell.Text())
	}
	return result
}

func newPlacer() *header.Placer {
	return header.NewPlacer(design.NewDocument(logger.Discard()), design.Factory{}, logger.Discard())
}

func TestPlacer_PlaceAll(t *testing.T) {
	geo := fixture.Dim{Name: "Geo", Levels: []string{"Region", "Country"}}
	region := fixture.Dim{Name: "Geo", Levels: []string{"Region"}}
	yearQuarter := fixture.Dim{Name: "Time", Levels: []string{"Year", "Quarter"}}

	testCases := []struct {
		description string
		rows        []fixture.Dim
		columns     []fixture.Dim
		measures    []string
		direction   models.MeasureDirection
		expect      []string
	}{
		{
			description: "row levels fill the last header row",
			rows:        []fixture.Dim{geo},
			columns:     []fixture.Dim{{Name: "Time", Levels: []string{"Year"}}},
			expect:      []string{"Region", "Country"},
		},
		{
			description: "column levels fill the last header column",
			rows:        []fixture.Dim{region},
			columns:     []fixture.Dim{yearQuarter},
			measures:    []string{"Revenue"},
			direction:   models.Vertical,
			expect:      []string{"Year", "Quarter", "Region"},
		},
		{
			description: "innermost column level yields to the row labels",
			rows:        []fixture.Dim{region},
			columns:     []fixture.Dim{yearQuarter},
			expect:      []string{"Year", "Region"},
		},
		{
			description: "horizontal measure header column",
			rows:        []fixture.Dim{region},
			columns:     []fixture.Dim{yearQuarter},
			measures:    []string{"Revenue"},
			direction:   models.Horizontal,
			expect:      []string{"", "Year", "Region", "Quarter"},
		},
	}

	for _, testCase := range testCases {
		ct := fixture.Crosstab(testCase.rows, testCase.columns, testCase.measures...)
		if testCase.direction != "" {
			ct.MeasureDirection = testCase.direction
		}
		rows, cols := header.Extent(ct)
		fixture.EmptyHeader(ct, rows*cols)

		placer := newPlacer()
		placer.PlaceAll(ct)
		assert.Equal(t, testCase.expect, texts(ct), testCase.description)

		placer.PlaceAll(ct)
		assert.Equal(t, testCase.expect, texts(ct), "idempotent: "+testCase.description)
	}
}

func TestPlacer_PredecessorIsPlacedFirst(t *testing.T) {
	ct := fixture.Crosstab(
		[]fixture.Dim{{Name: "Geo", Levels: []string{"Region"}}},
		[]fixture.Dim{{Name: "Time", Levels: []string{"Year"}}, {Name: "Product", Levels: []string{"Line"}}},
	)
	fixture.EmptyHeader(ct, 2)

	newPlacer().PlaceLabel(fixture.Level(ct, models.ColumnAxis, 1))
	assert.Equal(t, []string{"Year", ""}, texts(ct))
}

func TestPlacer_ForceOverwrite(t *testing.T) {
	ct := fixture.Crosstab([]fixture.Dim{{Name: "Geo", Levels: []string{"Region"}}}, nil, "Revenue")
	ct.MeasureDirection = models.Vertical
	rows, cols := header.Extent(ct)
	require.Equal(t, 1, rows*cols)

	label := &models.Content{ID: "old", Type: models.LabelContent, Text: "stale"}
	ct.Header = []*models.HeaderCell{{Contents: []*models.Content{label}}}

	region := fixture.Level(ct, models.RowAxis, 0)
	placer := newPlacer()
	placer.PlaceLabel(region)
	assert.Equal(t, "Region", ct.Header[0].Text())
	assert.Same(t, label, ct.Header[0].Contents[0], "existing label is updated in place")

	region.DisplayField = "Sales Region"
	placer.PlaceLabel(region)
	assert.Equal(t, "Sales Region", ct.Header[0].Text())

	data := &models.Content{Type: models.DataContent, Text: "data"}
	ct.Header[0].Contents = []*models.Content{data}
	placer.PlaceLabel(region)
	assert.Equal(t, "data", ct.Header[0].Text(), "non-label contents are left untouched")
}

func TestPlacer_NoOverwriteWithoutForce(t *testing.T) {
	ct := fixture.Crosstab([]fixture.Dim{{Name: "Geo", Levels: []string{"Region", "Country"}}}, []fixture.Dim{{Name: "Time", Levels: []string{"Year"}}})
	ct.Header = []*models.HeaderCell{
		{Contents: []*models.Content{{Type: models.LabelContent, Text: "custom"}}},
		{},
	}
	newPlacer().PlaceAll(ct)
	assert.Equal(t, []string{"custom", "Country"}, texts(ct))
}

func TestPlacer_DisplayField(t *testing.T) {
	ct := fixture.Crosstab([]fixture.Dim{{Name: "Geo", Levels: []string{"Region", "Country"}}}, []fixture.Dim{{Name: "Time", Levels: []string{"Year"}}})
	fixture.EmptyHeader(ct, 2)
	fixture.Level(ct, models.RowAxis, 1).DisplayField = "Country Name"

	newPlacer().PlaceAll(ct)
	assert.Equal(t, []string{"Region", "Country Name"}, texts(ct))
	assert.Equal(t, models.LabelContent, ct.Header[1].Contents[0].Type)
	assert.NotEmpty(t, ct.Header[1].Contents[0].ID)
}

func TestPlacer_FailuresAreSuppressed(t *testing.T) {
	ct := fixture.Crosstab([]fixture.Dim{{Name: "Geo", Levels: []string{"Region", "Unknown"}}}, []fixture.Dim{{Name: "Time", Levels: []string{"Year"}}})
	fixture.EmptyHeader(ct, 2)
	ct.Extends = "library.crosstab"

	defer logger.Level.Set(slog.LevelInfo)
	logger.Level.Set(slog.LevelDebug)
	var buf bytes.Buffer
	placer := header.NewPlacer(design.NewDocument(logger.Discard()), design.Factory{}, logger.New(&buf, logger.FormatText))

	assert.NotPanics(t, func() { placer.PlaceAll(ct) })
	assert.Equal(t, []string{"", ""}, texts(ct))
	assert.Contains(t, buf.String(), "header label not written")
	assert.Contains(t, buf.String(), "skipped header label for unresolved level")
	assert.Contains(t, buf.String(), "cube_level=Region")
	assert.Contains(t, buf.String(), "cube_level=Unknown")
}

func TestPlacer_OutOfRangeCell(t *testing.T) {
	ct := fixture.Crosstab([]fixture.Dim{{Name: "Geo", Levels: []string{"Region", "Country"}}}, nil)
	assert.NotPanics(t, func() { newPlacer().PlaceAll(ct) })
	assert.Empty(t, ct.Header)
	assert.NotPanics(t, func() { newPlacer().PlaceLabel(&models.LevelView{CubeLevel: "Region"}) })
}
