package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ardi-the-water/denj/internal/cli"
	"github.com/ardi-the-water/denj/internal/db"
	"github.com/ardi-the-water/denj/internal/menu"
	"github.com/ardi-the-water/denj/internal/repository"
	"github.com/ardi-the-water/denj/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local overrides for development; absence is not an error.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.denj/denj.db
	dbPath := os.Getenv("DENJ_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".denj", "denj.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	slots := repository.NewSQLiteSlotRepo(database)

	// Persistence failures never abort the session; route them to
	// stderr when asked for.
	var persistObserver service.Observer = service.NoopObserver{}
	if logPersist, _ := strconv.ParseBool(os.Getenv("DENJ_LOG_PERSIST")); logPersist {
		persistObserver = service.NewLogObserver(os.Stderr)
	}

	settingsSvc := service.NewSettingsService(slots, persistObserver)
	invoiceSvc := service.NewInvoiceService(slots, persistObserver)
	orderSvc := service.NewOrderService(slots, invoiceSvc, persistObserver)

	ctx := context.Background()
	settingsSvc.Load(ctx)
	invoiceSvc.Load(ctx)
	orderSvc.Load(ctx)

	menuCfg := menu.LoadConfig()
	var menuObserver menu.Observer = menu.NoopObserver{}
	if menuCfg.LogCalls {
		menuObserver = menu.NewLogObserver(os.Stderr)
	}
	loader := menu.NewLoader(menu.NewFetcher(menuCfg), menuObserver)

	app := &cli.App{
		Settings: settingsSvc,
		Invoices: invoiceSvc,
		Orders:   orderSvc,
		Menu:     loader,
	}

	// Detect interactive terminal for the bare-command entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
