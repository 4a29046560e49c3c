// Package models defines the data structures of a crosstab design.
package models

// CellRow represents a single row of a rendered header grid.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell text.
	C map[string]interface{} `json:"c"`
}
