package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/trailog/internal/cli"
	"github.com/alexanderramin/trailog/internal/config"
	"github.com/alexanderramin/trailog/internal/db"
	"github.com/alexanderramin/trailog/internal/repository"
	"github.com/alexanderramin/trailog/internal/service"
	"github.com/alexanderramin/trailog/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	repo, closer, err := openRepo(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}
	sess := service.NewSession(repo, service.WithObserver(observer))

	ctx := context.Background()
	if err := sess.Load(ctx); err != nil {
		// Malformed snapshot: warn and start empty.
		if !errors.Is(err, store.ErrDeserialization) {
			return err
		}
		fmt.Fprintf(os.Stderr, "Warning: %v; starting with no workouts\n", err)
	}

	app := &cli.App{
		Workouts: sess,
		MapZoom:  cfg.MapZoom,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openRepo returns the snapshot repository for the configured backend and
// whatever must be closed on exit.
func openRepo(cfg config.Config) (repository.SnapshotRepo, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return repository.NewFileSnapshotRepo(cfg.SnapshotPath), nopCloser{}, nil
	case config.BackendSQLite:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLiteSnapshotRepo(database), database, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
