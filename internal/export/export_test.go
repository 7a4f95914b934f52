package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRows() []domain.DailySummary {
	in := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	out := time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)
	openIn := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

	return []domain.DailySummary{
		{
			WorkerID:   "w-1",
			WorkerName: "Dana",
			Date:       "2026-03-09",
			Shift: domain.ReconstructedShift{
				ClockIn:     &in,
				ClockOut:    &out,
				TotalWorked: 8 * time.Hour,
				BreakTime:   30 * time.Minute,
				NetWorked:   7*time.Hour + 30*time.Minute,
				Status:      domain.ShiftComplete,
			},
			TotalHours: 8.0,
			BreakHours: 0.5,
			NetHours:   7.5,
		},
		{
			WorkerID:   "w-1",
			WorkerName: "Dana",
			Date:       "2026-03-10",
			Shift: domain.ReconstructedShift{
				ClockIn:     &openIn,
				TotalWorked: 9 * time.Hour,
				NetWorked:   9 * time.Hour,
				Status:      domain.ShiftIncomplete,
			},
			TotalHours:       9.0,
			NetHours:         9.0,
			HasIssues:        true,
			IssueDescription: "missing clock-out",
		},
	}
}

func TestWriteCSV_English(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows(), time.UTC, "en"))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"Date", "Worker", "Clock In", "Clock Out", "Break", "Total", "Net", "Status", "Issues",
	}, records[0])
	assert.Equal(t, []string{
		"2026-03-09", "Dana", "9:00 AM", "5:00 PM", "0h 30m", "8h 0m", "7h 30m", "complete", "",
	}, records[1])
	assert.Equal(t, []string{
		"2026-03-10", "Dana", "8:30 AM", "", "0h 0m", "9h 0m", "9h 0m", "incomplete", "missing clock-out",
	}, records[2])
}

func TestWriteCSV_Spanish(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows(), time.UTC, "es"))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, "Fecha", records[0][0])
	assert.Equal(t, "Trabajador", records[0][1])
	assert.Equal(t, "9:00", records[1][2], "es uses 24-hour clock")
	assert.Equal(t, "17:00", records[1][3])
	assert.Equal(t, "completo", records[1][7])
	assert.Equal(t, "incompleto", records[2][7])
}

func TestWriteCSV_TimezoneConversion(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*3600)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows(), zone, "en"))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "4:00 AM", records[1][2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, time.UTC, "en"))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleRows(), time.UTC, "en"))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, "Attendance", f.GetSheetName(0))

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "Dana", rows[1][1])
	assert.Equal(t, "7h 30m", rows[1][6])
	assert.Equal(t, "missing clock-out", rows[2][8])
}
