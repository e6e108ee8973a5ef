package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/report"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/store"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse archived digests interactively",
	Long:  "Pick an archived digest run and page through its listings in the terminal.",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	sqlStore, err := store.NewSQLiteStore(cfg.Archive.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open archive: %v\n", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	runs, err := sqlStore.ListRuns(50)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list runs: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No archived runs yet.")
		return nil
	}

	idx, err := report.RunPicker(runs)
	if err != nil {
		return err
	}
	if idx < 0 {
		return nil
	}

	listings, err := sqlStore.RunListings(runs[idx].ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load run: %v\n", err)
		os.Exit(1)
	}

	return report.RunViewer(runs[idx], listings)
}
