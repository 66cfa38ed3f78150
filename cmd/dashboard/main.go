package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/apiclient"
	"github.com/01moynul/stockdash/internal/config"
	"github.com/01moynul/stockdash/internal/dashboard"
	"github.com/01moynul/stockdash/internal/database"
	"github.com/01moynul/stockdash/internal/logger"
	"github.com/01moynul/stockdash/internal/threshold"
)

const usage = `Usage: dashboard [flags] <command> [command flags]

Commands:
  status      load the inventory and show low-stock warnings
  sale        record a sale (-barcode or -name, -amount)
  threshold   set the stock warning level (-value)
  forecast    ask for a demand forecast
  charts      write chart configs (-out)
  add         add items (-item "barcode|name|quantity|expiry[|supplier|order_qty|restock_at]", repeatable)
  delete      delete an item (-id, -yes to skip the prompt)
  supplier    set supplier details (-id, -supplier, -qty)
  recommend   recommend a supplier (-product)
  restock     reorder everything under its restock level

Flags:
`

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	baseURL := flag.String("api", cfg.Client.BaseURL, "Base URL of the dashboard API")
	store := flag.String("store", cfg.Threshold.Store, "Threshold store: file, mysql or memory")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.Client.BaseURL = *baseURL
	cfg.Threshold.Store = *store

	appLogger, err := logger.New(cfg.Logger, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, appLogger, flag.Arg(0), flag.Args()[1:]); err != nil {
		appLogger.Debug("command failed", zap.String("command", flag.Arg(0)), zap.Error(err))
		if !errors.Is(err, errSilentFailure) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger *zap.Logger, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	exec := cmd(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	thresholdStore, closeStore, err := openStore(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer closeStore()

	client, err := apiclient.New(cfg.Client.BaseURL, apiclient.WithTimeout(cfg.Client.Timeout))
	if err != nil {
		return err
	}

	ui := newConsoleUI(os.Stdout, chartDir(fs), appLogger)
	dash, err := dashboard.New(dashboard.Options{
		Backend: client,
		Store:   thresholdStore,
		UI:      ui,
		Logger:  appLogger,
	})
	if err != nil {
		return err
	}

	return exec(ctx, &env{dash: dash, ui: ui, in: os.Stdin, out: os.Stdout})
}

// openStore picks the threshold cache named by cfg.Threshold.Store.
func openStore(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) (threshold.Store, func(), error) {
	switch cfg.Threshold.Store {
	case "memory":
		return threshold.NewMemoryStore(), func() {}, nil
	case "file", "":
		return threshold.NewFileStore(cfg.Threshold.File), func() {}, nil
	case "mysql":
		db, err := database.OpenDBWithDSN(database.Config{
			DSN:             cfg.Database.DSN,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open threshold database: %w", err)
		}
		sqlStore := threshold.NewSQLStore(db)
		if err := sqlStore.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		appLogger.Debug("threshold store connected to MySQL")
		return sqlStore, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown threshold store %q", cfg.Threshold.Store)
	}
}

func chartDir(fs *flag.FlagSet) string {
	if f := fs.Lookup("out"); f != nil {
		return f.Value.String()
	}
	return ""
}
