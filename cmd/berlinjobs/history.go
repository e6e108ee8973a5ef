package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived digest runs",
	Long:  "Reads the archive and prints a table of past digest runs.",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	runs, err := sqlStore.ListRuns(historyLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No archived runs yet.")
		return nil
	}

	fmt.Printf("%-5s %-18s %-6s %s\n", "ID", "Ran at", "Rows", "Queries")
	fmt.Println(strings.Repeat("─", 60))

	total := 0
	for _, r := range runs {
		fmt.Printf("%-5d %-18s %-6d %s\n", r.ID, r.RanAt.Format("2006-01-02 15:04"), r.RowCount, r.Queries)
		total += r.RowCount
	}

	fmt.Printf("\nTotal: %d runs, %d rows sent\n", len(runs), total)
	return nil
}
