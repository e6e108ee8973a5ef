package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "List the configured search queries",
	Long:  "Reads the config and prints the queries, location, and page count one run will use.",
	RunE:  runQueries,
}

func init() {
	rootCmd.AddCommand(queriesCmd)
}

func runQueries(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Location: %s   Pages per query: %d\n", cfg.Search.Location, cfg.Search.Pages)
	fmt.Println(strings.Repeat("─", 40))
	for _, q := range cfg.Search.Queries {
		fmt.Println(q)
	}
	fmt.Printf("\nTotal: %d queries (%d requests per run)\n", len(cfg.Search.Queries), len(cfg.Search.Queries)*cfg.Search.Pages)
	return nil
}
