package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/GowthamanS-2001/Berlin-jobs/internal/config"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/mailer"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/match"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/model"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/pipeline"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/rank"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/ratelimit"
	"github.com/GowthamanS-2001/Berlin-jobs/internal/serpapi"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "berlinjobs",
	Short: "Daily Berlin supply-chain job digest",
	Long:  "berlinjobs searches Google Jobs for entry-level supply chain, procurement and logistics roles in Berlin, ranks the results, and emails a digest with a CSV attachment.",
	// Default to `run` so that `berlinjobs` with no args works as a cron job.
	RunE: runRun,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: BERLINJOBS_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > BERLINJOBS_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("BERLINJOBS_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func setupSender(cfg *config.Config, logger *slog.Logger) model.DigestSender {
	switch cfg.Mail.Type {
	case "smtp":
		logger.Info("using smtp sender", "host", cfg.Mail.Host, "to", cfg.Mail.To)
		return mailer.NewSMTPSender(
			cfg.Mail.Host, cfg.Mail.Port,
			cfg.Mail.Username, cfg.Mail.Password,
			cfg.Mail.From, cfg.Mail.To,
			cfg.Mail.Timeout, logger,
		)
	default:
		return mailer.NewLogSender(logger)
	}
}

// buildRunner wires the full pipeline: rate-limited SerpAPI collector,
// relevance patterns, scorer, sender, and archive.
func buildRunner(cfg *config.Config, sender model.DigestSender, runStore model.RunStore, logger *slog.Logger) *pipeline.Runner {
	httpClient := &http.Client{Timeout: cfg.Search.Timeout}

	client := serpapi.NewClient(
		cfg.Search.BaseURL, cfg.Search.APIKey,
		cfg.Search.Location, cfg.Search.Language, cfg.Search.Country,
		httpClient,
	)
	limiter := ratelimit.NewLimiter(cfg.Search.MinDelay)
	searcher := ratelimit.NewRateLimitedSearcher(client, limiter)
	collector := serpapi.NewCollector(searcher, cfg.Search.Queries, cfg.Search.Pages, logger)

	patterns := match.New()
	scorer := rank.NewScorer(patterns)

	return pipeline.NewRunner(
		collector, patterns, scorer,
		sender, runStore,
		cfg.Digest.Size, cfg.Digest.SubjectPrefix,
		logger,
	)
}
