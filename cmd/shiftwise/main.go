package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	_ "time/tzdata"

	"github.com/averylane/shiftwise/internal/cli"
	"github.com/averylane/shiftwise/internal/db"
	"github.com/averylane/shiftwise/internal/repository"
	"github.com/averylane/shiftwise/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.shiftwise/shiftwise.db
	dbPath := os.Getenv("SHIFTWISE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".shiftwise", "shiftwise.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	workerRepo := repository.NewSQLiteWorkerRepo(database)
	punchRepo := repository.NewSQLitePunchRepo(database)
	profileRepo := repository.NewSQLiteShopProfileRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	// SHIFTWISE_LOG=1 turns on use-case telemetry to stderr.
	var logW io.Writer
	if os.Getenv("SHIFTWISE_LOG") != "" {
		logW = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(logW)

	app := &cli.App{
		Workers: service.NewWorkerService(workerRepo),
		Punches: service.NewPunchService(punchRepo, workerRepo, uow, observer),
		Reports: service.NewReportService(punchRepo, workerRepo, profileRepo, observer),
		Shop:    service.NewShopService(profileRepo),
		Import:  service.NewImportService(uow, observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
