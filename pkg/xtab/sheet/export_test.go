package sheet

import (
	"path/filepath"
	"testing"

	"github.com/perNyfelt/birt/internal/fixture"
	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func labelled(texts ...string) []*models.HeaderCell {
	var cells []*models.HeaderCell
	for _, text := range texts {
		cell := &models.HeaderCell{}
		if text != "" {
			cell.Contents = []*models.Content{{Type: models.LabelContent, Text: text}}
		}
		cells = append(cells, cell)
	}
	return cells
}

func TestWriteWorkbook_RoundTrip(t *testing.T) {
	ct := fixture.Crosstab(
		[]fixture.Dim{{Name: "Geo", Levels: []string{"Region", "Country"}}},
		[]fixture.Dim{{Name: "Time", Levels: []string{"Year"}}},
	)
	ct.Name = "revenue"
	ct.Header = labelled("Region", "Country")

	path := filepath.Join(t.TempDir(), "header.xlsx")
	require.NoError(t, WriteWorkbook(path, ct))

	wb, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "header.xlsx", wb.BookName)
	require.Contains(t, wb.Sheets, "revenue")

	grid := wb.Sheets["revenue"]
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, map[string]interface{}{"1": "Region", "2": "Country"}, grid.Rows[0].C)
	assert.Equal(t, "A1:B1", grid.UsedRange)
	assert.Equal(t, []models.Area{{R1: 1, C1: 1, R2: 1, C2: 2}}, grid.HeaderAreas)
	assert.Empty(t, grid.MergedAreas)
}

func TestExportHeader_Merged(t *testing.T) {
	ct := fixture.Crosstab(
		[]fixture.Dim{{Name: "Geo", Levels: []string{"Region", "Country", "City"}}},
		[]fixture.Dim{{Name: "Time", Levels: []string{"Year", "Quarter"}}},
	)
	ct.Header = labelled("Total")

	f := excelize.NewFile()
	defer f.Close()

	area, err := ExportHeader(f, "merged", ct)
	require.NoError(t, err)
	assert.Equal(t, models.Area{R1: 1, C1: 1, R2: 2, C2: 3}, area)
	assert.Equal(t, 6, area.Cells())

	merged, err := ExtractMergedAreas(f, "merged")
	require.NoError(t, err)
	assert.Equal(t, []models.Area{area}, merged)

	value, err := f.GetCellValue("merged", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Total", value)

	assert.Equal(t, []models.Area{area}, ExtractHeaderAreas(f)["merged"])
}

func TestExportHeader_EmptyGrid(t *testing.T) {
	ct := fixture.Crosstab(nil, nil)

	f := excelize.NewFile()
	defer f.Close()

	_, err := ExportHeader(f, "Sheet1", ct)
	assert.True(t, errors.Is(err, ErrEmptyGrid))
}

func TestSheetName(t *testing.T) {
	testCases := []struct {
		name   string
		index  int
		expect string
	}{
		{name: "revenue", expect: "revenue"},
		{name: "a/b:c", expect: "a_b_c"},
		{name: "", index: 1, expect: "Crosstab2"},
		{name: "a very long crosstab name that overflows", expect: "a very long crosstab name that "},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, SheetName(testCase.name, testCase.index), testCase.name)
	}
}

func TestParseAreaReference(t *testing.T) {
	sheetName, areas := parseAreaReference("'My Sheet'!$A$1:$C$2,'My Sheet'!$E$5")
	assert.Equal(t, "My Sheet", sheetName)
	assert.Equal(t, []models.Area{{R1: 1, C1: 1, R2: 2, C2: 3}, {R1: 5, C1: 5, R2: 5, C2: 5}}, areas)

	sheetName, areas = parseAreaReference("#REF!")
	assert.Equal(t, "#REF", sheetName)
	assert.Empty(t, areas)
}
