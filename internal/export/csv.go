package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
)

// WriteCSV writes the report rows as CSV with a localized header.
func WriteCSV(w io.Writer, rows []domain.DailySummary, loc *time.Location, lang string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(headerRow(lang)); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(flattenRow(row, loc, lang)); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
