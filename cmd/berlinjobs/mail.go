package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/mailer"
)

var mailCmd = &cobra.Command{
	Use:   "mail",
	Short: "Mail subcommands",
}

var mailTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a test digest",
	Long:  "Sends a one-row test digest through the configured sender to verify the mail setup.",
	RunE:  runMailTest,
}

func init() {
	rootCmd.AddCommand(mailCmd)
	mailCmd.AddCommand(mailTestCmd)
}

func runMailTest(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sender := setupSender(cfg, logger)
	if err := mailer.SendTestDigest(sender, cfg.Digest.SubjectPrefix); err != nil {
		logger.Error("test digest failed", "error", err)
		os.Exit(1)
	}
	logger.Info("test digest sent successfully")
	return nil
}
