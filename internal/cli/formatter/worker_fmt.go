package formatter

import (
	"github.com/averylane/shiftwise/internal/domain"
)

// FormatWorkerList renders the worker roster as a table.
func FormatWorkerList(workers []*domain.Worker) string {
	headers := []string{"ID", "Name", "Role", "Status"}

	rows := make([][]string, 0, len(workers))
	for _, w := range workers {
		role := w.Role
		if role == "" {
			role = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(w.ID),
			w.Name,
			role,
			WorkerStatusPill(w.Status),
		})
	}

	return RenderTable(headers, rows)
}

// FormatShopProfile renders the shop settings box.
func FormatShopProfile(p *domain.ShopProfile) string {
	content := "Name:      " + orDim(p.Name) + "\n" +
		"Timezone:  " + p.Timezone + "\n" +
		"Locale:    " + p.Locale
	return RenderBox("Shop Profile", content)
}

func orDim(s string) string {
	if s == "" {
		return Dim("(unset)")
	}
	return s
}
