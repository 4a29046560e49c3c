package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	testCases := []struct {
		description string
		locale      string
		expect      string
	}{
		{
			description: "english",
			locale:      "en",
			expect:      `The dimension "Geo" on the row area cannot be found in the cube.`,
		},
		{
			description: "german region falls back to german",
			locale:      "de-AT",
			expect:      `Die Dimension "Geo" im Zeilenbereich wurde im Cube nicht gefunden.`,
		},
		{
			description: "unsupported locale falls back to english",
			locale:      "ja",
			expect:      `The dimension "Geo" on the row area cannot be found in the cube.`,
		},
		{
			description: "malformed locale falls back to english",
			locale:      "???",
			expect:      `The dimension "Geo" on the row area cannot be found in the cube.`,
		},
	}

	for _, testCase := range testCases {
		actual := Printer(testCase.locale).Sprintf(InvalidDimensionRow, "Geo")
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestSetLocale(t *testing.T) {
	defer SetLocale("")
	SetLocale("de")
	assert.Equal(t, `Die Ebene "Year" im Spaltenbereich wurde im Cube nicht gefunden.`, Sprintf(InvalidLevelColumn, "Year"))
	SetLocale("")
	assert.Equal(t, `The level "Year" on the column area cannot be found in the cube.`, Sprintf(InvalidLevelColumn, "Year"))
}
