package sheet

import (
	"strings"

	"github.com/perNyfelt/birt/pkg/xtab/models"
	"github.com/xuri/excelize/v2"
)

// HeaderAreaName is the defined name registered for every exported header region.
const HeaderAreaName = "_xtab.Header"

// ExtractHeaderAreas returns the header areas of a workbook keyed by sheet name.
func ExtractHeaderAreas(f *excelize.File) map[string][]models.Area {
	result := make(map[string][]models.Area)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, HeaderAreaName) {
			continue
		}
		sheetName, areas := parseAreaReference(dn.RefersTo)
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}
	return result
}

// ExtractMergedAreas returns the merged ranges of a sheet.
func ExtractMergedAreas(f *excelize.File, sheetName string) ([]models.Area, error) {
	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	var areas []models.Area
	for _, mc := range merged {
		if area := parseRangeToArea(mc.GetStartAxis() + ":" + mc.GetEndAxis()); area != nil {
			areas = append(areas, *area)
		}
	}
	return areas, nil
}

// parseAreaReference parses 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parseAreaReference(ref string) (string, []models.Area) {
	var areas []models.Area
	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area := parseRangeToArea(part[idx+1:]); area != nil {
			areas = append(areas, *area)
		}
	}
	return sheetName, areas
}

// parseRangeToArea parses a range like $A$1:$D$10. A single cell yields a 1x1 area.
func parseRangeToArea(rangeStr string) *models.Area {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}
	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}
	return &models.Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}
}

// areaReference formats an area as an absolute reference on a sheet.
func areaReference(sheetName string, area models.Area) (string, error) {
	start, err := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	if err != nil {
		return "", err
	}
	return "'" + sheetName + "'!" + start + ":" + end, nil
}
