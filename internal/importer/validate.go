package importer

import (
	"fmt"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
)

// RowError collects everything wrong with a single import row.
type RowError struct {
	Index int
	Errs  []error
}

func (r RowError) Error() string {
	if len(r.Errs) == 1 {
		return fmt.Sprintf("punches[%d]: %v", r.Index, r.Errs[0])
	}
	return fmt.Sprintf("punches[%d]: %d problems, first: %v", r.Index, len(r.Errs), r.Errs[0])
}

// ValidateImportSchema checks every row and returns all validation
// errors found, flattened in row order.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	for _, re := range rowErrors(schema) {
		for _, err := range re.Errs {
			errs = append(errs, fmt.Errorf("punches[%d]: %w", re.Index, err))
		}
	}
	return errs
}

// PartitionRows splits the schema into rows that pass validation and
// per-row rejections. indexes carries each valid row's original
// position so later stages can report against the source file.
// Rejected rows are reported, never silently dropped.
func PartitionRows(schema *ImportSchema) (valid []PunchImport, indexes []int, rejected []RowError) {
	bad := make(map[int]bool)
	rejected = rowErrors(schema)
	for _, re := range rejected {
		bad[re.Index] = true
	}
	for i, p := range schema.Punches {
		if !bad[i] {
			valid = append(valid, p)
			indexes = append(indexes, i)
		}
	}
	return valid, indexes, rejected
}

func rowErrors(schema *ImportSchema) []RowError {
	seenIDs := make(map[string]bool)
	var out []RowError
	for i, p := range schema.Punches {
		if errs := validateRow(&p, seenIDs); len(errs) > 0 {
			out = append(out, RowError{Index: i, Errs: errs})
		}
	}
	return out
}

func validateRow(p *PunchImport, seenIDs map[string]bool) []error {
	var errs []error

	if p.ID != "" {
		if seenIDs[p.ID] {
			errs = append(errs, fmt.Errorf("duplicate id %q", p.ID))
		}
		seenIDs[p.ID] = true
	}

	if p.Worker == "" {
		errs = append(errs, fmt.Errorf("worker is required"))
	}

	if p.Kind == "" {
		errs = append(errs, fmt.Errorf("kind is required"))
	} else if !domain.ValidPunchKinds[domain.PunchKind(p.Kind)] {
		errs = append(errs, fmt.Errorf("invalid kind %q", p.Kind))
	}

	if p.Timestamp == "" {
		errs = append(errs, fmt.Errorf("timestamp is required"))
	} else if _, err := time.Parse(time.RFC3339, p.Timestamp); err != nil {
		errs = append(errs, fmt.Errorf("invalid timestamp %q (expected RFC3339)", p.Timestamp))
	}

	return errs
}
