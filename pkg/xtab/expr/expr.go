// Package expr builds and recognizes the script expressions used by crosstab bindings.
package expr

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// DataSetRowIndicator prefixes an expression reading a data-set column.
	DataSetRowIndicator = "dataSetRow"
	// DataSetMarker is the alternate data-set reference token.
	DataSetMarker = "[DATASET]"
	// DimensionIndicator prefixes an expression reading a cube dimension level.
	DimensionIndicator = "dimension"
	// DataIndicator prefixes an expression reading another binding.
	DataIndicator = "data"
	// LevelSeparator separates dimension and level in a full level name.
	LevelSeparator = "/"
)

const quoted = `("(?:[^"\\]|\\.)*")`

var (
	dimensionPattern = regexp.MustCompile(`^\s*dimension\s*\[\s*` + quoted + `\s*\]\s*\[\s*` + quoted + `\s*\]\s*$`)
	bindingPattern   = regexp.MustCompile(`^\s*(?:data|row)\s*\[\s*` + quoted + `\s*\]\s*$`)
)

// Dimension returns the expression reading level of dimension, e.g. dimension["Geo"]["Country"].
func Dimension(dimension, level string) string {
	return DimensionIndicator + "[" + strconv.Quote(dimension) + "][" + strconv.Quote(level) + "]"
}

// DataSetRow returns the expression reading a data-set column, e.g. dataSetRow["COUNTRY"].
func DataSetRow(column string) string {
	return DataSetRowIndicator + "[" + strconv.Quote(column) + "]"
}

// Data returns the expression reading another binding, e.g. data["total"].
func Data(binding string) string {
	return DataIndicator + "[" + strconv.Quote(binding) + "]"
}

// IsDataSetFieldReferred reports whether expression reads a data-set field directly.
func IsDataSetFieldReferred(expression string) bool {
	return strings.Contains(expression, DataSetRowIndicator) || strings.Contains(expression, DataSetMarker)
}

// SplitLevelName splits "dimension/level" at the first separator.
// A name without separator has an empty dimension part.
func SplitLevelName(fullName string) (dimension, level string) {
	index := strings.Index(fullName, LevelSeparator)
	if index < 0 {
		return "", fullName
	}
	return fullName[:index], fullName[index+1:]
}

// ParseDimension extracts the dimension and level names from a dimension expression.
func ParseDimension(expression string) (dimension, level string, ok bool) {
	match := dimensionPattern.FindStringSubmatch(expression)
	if match == nil {
		return "", "", false
	}
	var err error
	if dimension, err = strconv.Unquote(match[1]); err != nil {
		return "", "", false
	}
	if level, err = strconv.Unquote(match[2]); err != nil {
		return "", "", false
	}
	return dimension, level, true
}

// ParseBinding extracts the binding name from a data["name"] or row["name"] expression.
func ParseBinding(expression string) (string, bool) {
	match := bindingPattern.FindStringSubmatch(expression)
	if match == nil {
		return "", false
	}
	name, err := strconv.Unquote(match[1])
	if err != nil {
		return "", false
	}
	return name, true
}
