// Package output serializes crosstab results to JSON.
package output

import (
	"github.com/goccy/go-json"
	"github.com/perNyfelt/birt/pkg/xtab/models"
)

// ToJSON marshals v, indented with two spaces when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// BindingsToJSON serializes derived bindings.
func BindingsToJSON(bindings []*models.Binding, pretty bool) ([]byte, error) {
	if bindings == nil {
		bindings = []*models.Binding{}
	}
	return ToJSON(bindings, pretty)
}

// WorkbookToJSON serializes a rendered workbook read back from disk.
func WorkbookToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return ToJSON(wb, pretty)
}
