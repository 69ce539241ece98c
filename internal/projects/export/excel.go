package export

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/domain"
)

// SheetName is the single worksheet every exported workbook contains.
const SheetName = "Time Motion Data"

// Workbook renders a stored project record as an xlsx workbook: a
// header row ("Task Name" plus each timer column), then one row per
// task with its elapsed times formatted as MM:SS.CC. Timer entries the
// record never captured render as zero.
func Workbook(p *domain.Project) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := append([]string{"Task Name"}, p.ColumnNames...)
	widths := make([]int, len(header))

	if err := writeRow(f, 1, header, widths); err != nil {
		return nil, err
	}

	for i, row := range p.Rows {
		cells := make([]string, 0, len(header))
		name := row.Name
		if name == "" {
			name = "Unnamed Task"
		}
		cells = append(cells, name)
		for col := range p.ColumnNames {
			cells = append(cells, FormatDuration(p.TimerMillis(row.ID, col)))
		}
		if err := writeRow(f, i+2, cells, widths); err != nil {
			return nil, err
		}
	}

	// Auto-size: widest value per column plus a little padding.
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(SheetName, col, col, float64(w+2)); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

// Filename suggests the download name for an exported record.
func Filename(projectName string) string {
	name := domain.SanitizeName(projectName)
	if name == "" {
		name = "export"
	}
	return name + ".xlsx"
}

func writeRow(f *excelize.File, row int, cells []string, widths []int) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
		// width is measured in characters, not bytes
		if n := utf8.RuneCountInString(v); n > widths[i] {
			widths[i] = n
		}
	}
	return nil
}
