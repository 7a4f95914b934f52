package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveWorkerID resolves user input to a worker id. Exact id wins,
// then unique case-insensitive name, then unique id prefix.
func resolveWorkerID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("worker is required")
	}

	workers, err := app.Workers.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, w := range workers {
		if w.ID == input {
			return w.ID, nil
		}
	}

	var nameMatches []string
	for _, w := range workers {
		if strings.EqualFold(w.Name, input) {
			nameMatches = append(nameMatches, w.ID)
		}
	}
	switch len(nameMatches) {
	case 1:
		return nameMatches[0], nil
	case 0:
	default:
		return "", fmt.Errorf("worker name %q is ambiguous (%d matches), use the id", input, len(nameMatches))
	}

	var prefixMatches []string
	for _, w := range workers {
		if strings.HasPrefix(w.ID, input) {
			prefixMatches = append(prefixMatches, w.ID)
		}
	}
	switch len(prefixMatches) {
	case 0:
		return "", fmt.Errorf("worker not found: %q", input)
	case 1:
		return prefixMatches[0], nil
	default:
		return "", fmt.Errorf("worker id prefix %q is ambiguous (%d matches)", input, len(prefixMatches))
	}
}
