package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/mailer"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/store"
)

var dryRun bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one digest and exit",
	Long:  "One-shot digest run: search, filter, rank, email, archive, exit. Intended for cron.",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "log the digest instead of emailing it, archive nothing")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("config loaded",
		"queries", len(cfg.Search.Queries),
		"location", cfg.Search.Location,
		"pages", cfg.Search.Pages,
		"digest_size", cfg.Digest.Size,
		"mail", cfg.Mail.Type,
	)

	var sender model.DigestSender
	var runStore model.RunStore
	if dryRun {
		logger.Info("dry-run mode: nothing will be emailed or archived")
		sender = mailer.NewLogSender(logger)
		runStore = store.NewNopStore()
	} else {
		sender = setupSender(cfg, logger)
		sqlStore, err := store.NewSQLiteStore(cfg.Archive.Path)
		if err != nil {
			logger.Error("failed to open archive", "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()
		runStore = sqlStore
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := buildRunner(cfg, sender, runStore, logger)
	if err := runner.Run(ctx); err != nil {
		logger.Error("digest run failed", "error", err)
		os.Exit(1)
	}

	return nil
}
