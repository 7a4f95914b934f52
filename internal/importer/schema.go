package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for punch import. Fields
// are loosely typed strings; nothing is trusted until validation.
type ImportSchema struct {
	Punches []PunchImport `json:"punches"`
}

// PunchImport is one raw punch row from an external system.
type PunchImport struct {
	ID        string `json:"id,omitempty"`
	Worker    string `json:"worker"`
	Kind      string `json:"kind"`
	Timestamp string `json:"timestamp"`
	Note      string `json:"note,omitempty"`
}

// LoadImportSchema reads and parses a punch import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
