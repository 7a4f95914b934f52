package importer

import (
	"fmt"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
	"github.com/google/uuid"
)

// ConvertRows transforms validated rows into punch events ready for
// persistence. resolveWorker maps the row's worker reference (id or
// name) to a worker id; rows it cannot resolve come back as RowError
// with the original row index taken from indexes.
//
// Call PartitionRows first; ConvertRows assumes each row's shape is
// valid.
func ConvertRows(rows []PunchImport, indexes []int, resolveWorker func(ref string) (string, bool)) ([]domain.PunchEvent, []RowError) {
	now := time.Now().UTC()

	var events []domain.PunchEvent
	var rejected []RowError
	for i, p := range rows {
		workerID, ok := resolveWorker(p.Worker)
		if !ok {
			rejected = append(rejected, RowError{
				Index: rowIndex(indexes, i),
				Errs:  []error{fmt.Errorf("unknown worker %q", p.Worker)},
			})
			continue
		}

		ts, err := time.Parse(time.RFC3339, p.Timestamp)
		if err != nil {
			rejected = append(rejected, RowError{
				Index: rowIndex(indexes, i),
				Errs:  []error{fmt.Errorf("invalid timestamp %q", p.Timestamp)},
			})
			continue
		}

		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		events = append(events, domain.PunchEvent{
			ID:        id,
			WorkerID:  workerID,
			Kind:      domain.PunchKind(p.Kind),
			Timestamp: ts,
			Note:      p.Note,
			CreatedAt: now,
		})
	}
	return events, rejected
}

func rowIndex(indexes []int, i int) int {
	if i < len(indexes) {
		return indexes[i]
	}
	return i
}
