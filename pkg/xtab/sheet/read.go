package sheet

import (
	"path/filepath"

	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads the rendered grid of one sheet.
func ReadGrid(f *excelize.File, sheetName string) (models.GridData, error) {
	rows, err := ReadCells(f, sheetName)
	if err != nil {
		return models.GridData{}, err
	}
	used, err := UsedRange(f, sheetName)
	if err != nil {
		return models.GridData{}, err
	}
	merged, err := ExtractMergedAreas(f, sheetName)
	if err != nil {
		return models.GridData{}, err
	}
	return models.GridData{Rows: rows, MergedAreas: merged, UsedRange: used}, nil
}

// Read reads every sheet of the workbook at path.
func Read(path string) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := make(map[string]models.GridData)
	for _, sheetName := range f.GetSheetList() {
		grid, err := ReadGrid(f, sheetName)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read sheet %s", sheetName)
		}
		sheets[sheetName] = grid
	}
	for sheetName, areas := range ExtractHeaderAreas(f) {
		if grid, ok := sheets[sheetName]; ok {
			grid.HeaderAreas = areas
			sheets[sheetName] = grid
		}
	}
	return &models.WorkbookData{BookName: filepath.Base(path), Sheets: sheets}, nil
}
