package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/scheduler"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/store"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the digest daemon",
	Long:  "Runs one digest immediately, then one per configured interval; blocks until SIGINT/SIGTERM.",
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("config loaded",
		"queries", len(cfg.Search.Queries),
		"location", cfg.Search.Location,
		"interval", cfg.Schedule.Interval.String(),
		"mail", cfg.Mail.Type,
	)

	sqlStore, err := store.NewSQLiteStore(cfg.Archive.Path)
	if err != nil {
		logger.Error("failed to open archive", "error", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	sender := setupSender(cfg, logger)
	runner := buildRunner(cfg, sender, sqlStore, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.NewScheduler(runner, cfg.Schedule.Interval, logger)
	if err := sched.Run(ctx); err != nil {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
