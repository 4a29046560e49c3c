package xtab

import (
	"os"

	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/perNyfelt/birt/pkg/xtab/sheet"
)

// Export writes an xlsx preview with one header grid per crosstab.
func (s *Service) Export(path string, cts ...*models.Crosstab) error {
	if err := sheet.WriteWorkbook(path, cts...); err != nil {
		return err
	}
	s.logger.Info("exported header preview", "path", path, "crosstabs", len(cts))
	return nil
}

// Inspect reads back the grids of an xlsx file.
func (s *Service) Inspect(path string) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, NewLoadError(path, "workbook", ErrFileNotFound)
	}
	wb, err := sheet.Read(path)
	if err != nil {
		return nil, NewLoadError(path, "workbook", err)
	}
	for name, grid := range wb.Sheets {
		if len(grid.HeaderAreas) == 0 {
			s.logger.Warn("sheet has no registered header area", "sheet", name)
		}
	}
	return wb, nil
}
