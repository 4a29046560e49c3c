package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimension(t *testing.T) {
	assert.Equal(t, `dimension["Geo"]["Country"]`, Dimension("Geo", "Country"))
	assert.Equal(t, `dimension["Say \"hi\""]["a\\b"]`, Dimension(`Say "hi"`, `a\b`))
	assert.Equal(t, `dataSetRow["COUNTRY"]`, DataSetRow("COUNTRY"))
	assert.Equal(t, `data["total"]`, Data("total"))
}

func TestIsDataSetFieldReferred(t *testing.T) {
	testCases := []struct {
		expression string
		expect     bool
	}{
		{expression: `measure["Revenue"]`, expect: false},
		{expression: `dataSetRow["PRICE"] * 2`, expect: true},
		{expression: `[DATASET].PRICE`, expect: true},
		{expression: ``, expect: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, IsDataSetFieldReferred(testCase.expression), testCase.expression)
	}
}

func TestSplitLevelName(t *testing.T) {
	testCases := []struct {
		fullName  string
		dimension string
		level     string
	}{
		{fullName: "Geo/Country", dimension: "Geo", level: "Country"},
		{fullName: "Time/Year/Q", dimension: "Time", level: "Year/Q"},
		{fullName: "Orphan", dimension: "", level: "Orphan"},
	}
	for _, testCase := range testCases {
		dimension, level := SplitLevelName(testCase.fullName)
		assert.Equal(t, testCase.dimension, dimension, testCase.fullName)
		assert.Equal(t, testCase.level, level, testCase.fullName)
	}
}

func TestParseDimension(t *testing.T) {
	dimension, level, ok := ParseDimension(Dimension(`Say "hi"`, "Year"))
	assert.True(t, ok)
	assert.Equal(t, `Say "hi"`, dimension)
	assert.Equal(t, "Year", level)

	dimension, level, ok = ParseDimension(` dimension [ "Geo" ] [ "City" ] `)
	assert.True(t, ok)
	assert.Equal(t, "Geo", dimension)
	assert.Equal(t, "City", level)

	_, _, ok = ParseDimension(`dataSetRow["Geo"]`)
	assert.False(t, ok)
}

func TestParseBinding(t *testing.T) {
	name, ok := ParseBinding(`data["total"]`)
	assert.True(t, ok)
	assert.Equal(t, "total", name)

	name, ok = ParseBinding(`row["Revenue Sum"]`)
	assert.True(t, ok)
	assert.Equal(t, "Revenue Sum", name)

	_, ok = ParseBinding(`data["a"] + data["b"]`)
	assert.False(t, ok)
}
