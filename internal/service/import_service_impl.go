package service

import (
	"context"
	"fmt"
	"time"

	"github.com/averylane/shiftwise/internal/db"
	"github.com/averylane/shiftwise/internal/importer"
	"github.com/averylane/shiftwise/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportPunches(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportPunchesFromSchema(ctx, schema)
}

// ImportPunchesFromSchema stores every row that passes validation and
// resolves to a known worker. Rejected rows come back on the result;
// they never abort the rows that were fine.
func (s *importService) ImportPunchesFromSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{"rows": len(schema.Punches)}
		if result != nil {
			fields["imported"] = result.Imported
			fields["rejected"] = len(result.Rejected)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-punches",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	valid, indexes, rejected := importer.PartitionRows(schema)

	var imported int
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txWorkers := repository.NewSQLiteWorkerRepo(tx)
		txPunches := repository.NewSQLitePunchRepo(tx)

		resolve, err := workerResolver(ctx, txWorkers)
		if err != nil {
			return err
		}

		events, unresolved := importer.ConvertRows(valid, indexes, resolve)
		rejected = append(rejected, unresolved...)

		for _, e := range events {
			e := e
			if err := txPunches.Append(ctx, &e); err != nil {
				return fmt.Errorf("storing punch %s: %w", e.ID, err)
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{Imported: imported, Rejected: rejected}, nil
}

// workerResolver matches import rows to workers by id first, then by
// exact name. Ambiguous names (two workers sharing one name) resolve
// to neither and reject the row.
func workerResolver(ctx context.Context, workers repository.WorkerRepo) (func(string) (string, bool), error) {
	all, err := workers.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("loading workers: %w", err)
	}

	byID := make(map[string]bool, len(all))
	byName := make(map[string]string, len(all))
	ambiguous := make(map[string]bool)
	for _, w := range all {
		byID[w.ID] = true
		if _, dup := byName[w.Name]; dup {
			ambiguous[w.Name] = true
		}
		byName[w.Name] = w.ID
	}

	return func(ref string) (string, bool) {
		if byID[ref] {
			return ref, true
		}
		if ambiguous[ref] {
			return "", false
		}
		id, ok := byName[ref]
		return id, ok
	}, nil
}
