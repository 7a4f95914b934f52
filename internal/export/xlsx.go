package export

import (
	"fmt"
	"io"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

// WriteXLSX writes the report rows as a single-sheet workbook with a
// bold localized header row.
func WriteXLSX(w io.Writer, rows []domain.DailySummary, loc *time.Location, lang string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := setRow(f, 1, headerRow(lang)); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(headerIDs), 1)
		_ = f.SetCellStyle(sheetName, "A1", endCell, headerStyle)
	}

	for i, row := range rows {
		if err := setRow(f, i+2, flattenRow(row, loc, lang)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("addressing row %d: %w", rowNum, err)
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return fmt.Errorf("writing row %d: %w", rowNum, err)
	}
	return nil
}
