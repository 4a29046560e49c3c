package models

// Area represents cell coordinate bounds inside a rendered grid.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Cells returns the number of cells covered by the area.
func (a Area) Cells() int {
	if a.R2 < a.R1 || a.C2 < a.C1 {
		return 0
	}
	return (a.R2 - a.R1 + 1) * (a.C2 - a.C1 + 1)
}

// GridData represents a header grid read back from a rendered sheet.
type GridData struct {
	// Rows contains rows with at least one label.
	Rows []CellRow `json:"rows,omitempty"`
	// HeaderAreas contains the areas registered as crosstab headers.
	HeaderAreas []Area `json:"header_areas,omitempty"`
	// MergedAreas contains merged cell ranges.
	MergedAreas []Area `json:"merged_areas,omitempty"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:C2").
	UsedRange string `json:"used_range,omitempty"`
}

// WorkbookData represents a rendered workbook with per-sheet grids.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to GridData.
	Sheets map[string]GridData `json:"sheets"`
}
