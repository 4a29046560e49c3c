package sheet

import (
	"strconv"
	"strings"

	"github.com/perNyfelt/birt/pkg/xtab/header"
	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ErrEmptyGrid indicates a crosstab whose header grid has no cells.
var ErrEmptyGrid = errors.New("header grid has no cells")

const maxSheetNameLength = 31

// ExportHeader writes the header grid of ct to a sheet, creating the sheet when missing.
// An unmerged header fills the grid in row-major order; a merged header is written once
// and spans the whole grid. The grid is registered under HeaderAreaName.
func ExportHeader(f *excelize.File, sheetName string, ct *models.Crosstab) (models.Area, error) {
	rows, cols := header.Extent(ct)
	if rows*cols == 0 {
		return models.Area{}, errors.Wrapf(ErrEmptyGrid, "crosstab %s", ct.Name)
	}
	area := models.Area{R1: 1, C1: 1, R2: rows, C2: cols}

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return area, err
	}
	if idx < 0 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return area, errors.Wrapf(err, "failed to create sheet %s", sheetName)
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "999999", Style: 1},
			{Type: "top", Color: "999999", Style: 1},
			{Type: "right", Color: "999999", Style: 1},
			{Type: "bottom", Color: "999999", Style: 1},
		},
	})
	if err != nil {
		return area, err
	}
	start, _ := excelize.CoordinatesToCellName(area.C1, area.R1)
	end, _ := excelize.CoordinatesToCellName(area.C2, area.R2)
	if err := f.SetCellStyle(sheetName, start, end, style); err != nil {
		return area, err
	}

	if header.CanSplit(ct) {
		if err := f.SetCellStr(sheetName, start, ct.Header[0].Text()); err != nil {
			return area, err
		}
		if err := f.MergeCell(sheetName, start, end); err != nil {
			return area, errors.Wrapf(err, "failed to merge %s:%s", start, end)
		}
	} else {
		for i, cell := range ct.Header {
			if i >= rows*cols {
				break
			}
			name, _ := excelize.CoordinatesToCellName(i%cols+1, i/cols+1)
			if err := f.SetCellStr(sheetName, name, cell.Text()); err != nil {
				return area, err
			}
		}
	}

	ref, err := areaReference(sheetName, area)
	if err != nil {
		return area, err
	}
	if err := f.SetDefinedName(&excelize.DefinedName{Name: HeaderAreaName, RefersTo: ref, Scope: sheetName}); err != nil {
		return area, errors.Wrapf(err, "failed to register header area of %s", ct.Name)
	}
	return area, nil
}

// WriteWorkbook exports one sheet per crosstab and saves the workbook to path.
func WriteWorkbook(path string, cts ...*models.Crosstab) error {
	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetName(0)
	for i, ct := range cts {
		name := SheetName(ct.Name, i)
		if i == 0 {
			if err := f.SetSheetName(first, name); err != nil {
				return err
			}
		}
		if _, err := ExportHeader(f, name, ct); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// SheetName derives a valid sheet name from a crosstab name.
func SheetName(name string, index int) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.Trim(name, "'"))
	if name == "" {
		name = "Crosstab" + strconv.Itoa(index+1)
	}
	if runes := []rune(name); len(runes) > maxSheetNameLength {
		name = string(runes[:maxSheetNameLength])
	}
	return name
}
