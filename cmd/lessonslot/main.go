package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/lessonslot/internal/cli"
	"github.com/alexanderramin/lessonslot/internal/config"
	"github.com/alexanderramin/lessonslot/internal/db"
	"github.com/alexanderramin/lessonslot/internal/repository"
	"github.com/alexanderramin/lessonslot/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// --config must be known before cobra runs, since the database is opened
	// from it.
	configPath, err := preparseConfigFlag(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := cfg.Log.NewLogger(os.Stderr)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	studentRepo := repository.NewSQLiteStudentRepo(database)
	runRepo := repository.NewSQLiteScheduleRunRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Roster:    service.NewRosterService(studentRepo, uow, observer),
		Schedules: service.NewScheduleService(studentRepo, runRepo, uow, observer),
	}

	// Forms only run on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func preparseConfigFlag(args []string) (string, error) {
	fs := pflag.NewFlagSet("lessonslot", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var path string
	fs.StringVar(&path, "config", "", "")
	fs.BoolP("help", "h", false, "")
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("parsing --config: %w", err)
	}
	return path, nil
}
