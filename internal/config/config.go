package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the Berlin jobs digest.
type Config struct {
	Search   SearchConfig
	Digest   DigestConfig
	Mail     MailConfig
	Schedule ScheduleConfig
	Archive  ArchiveConfig
}

// SearchConfig controls the Google Jobs queries issued per run.
type SearchConfig struct {
	Queries  []string
	Location string
	Pages    int    // result pages fetched per query
	Language string // hl parameter
	Country  string // gl parameter
	APIKey   string // expanded from env var by Load
	BaseURL  string
	Timeout  time.Duration // per-request timeout
	MinDelay time.Duration // minimum gap between consecutive API requests
}

// DigestConfig controls the size and subject of the emailed digest.
type DigestConfig struct {
	Size          int // max rows kept after ranking
	SubjectPrefix string
}

// MailConfig controls how the digest is delivered.
type MailConfig struct {
	Type     string // "smtp" or "log"
	From     string
	To       string
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// ScheduleConfig controls the interval used by the start daemon.
type ScheduleConfig struct {
	Interval time.Duration
}

// ArchiveConfig controls where sent digests are recorded.
type ArchiveConfig struct {
	Path string `yaml:"path"`
}

const (
	defaultBaseURL       = "https://serpapi.com"
	defaultSubjectPrefix = "Daily Berlin Supply Chain Digest"
	defaultDigestSize    = 40
	defaultArchivePath   = "digests.db"
	defaultSMTPPort      = 465
)

// rawConfig is used for YAML unmarshaling (snake_case fields and durations as strings).
type rawConfig struct {
	Search   rawSearchConfig   `yaml:"search"`
	Digest   rawDigestConfig   `yaml:"digest"`
	Mail     rawMailConfig     `yaml:"mail"`
	Schedule rawScheduleConfig `yaml:"schedule"`
	Archive  ArchiveConfig     `yaml:"archive"`
}

type rawSearchConfig struct {
	Queries  []string `yaml:"queries"`
	Location string   `yaml:"location"`
	Pages    int      `yaml:"pages"`
	Language string   `yaml:"language"`
	Country  string   `yaml:"country"`
	APIKey   string   `yaml:"api_key"`
	BaseURL  string   `yaml:"base_url"`
	Timeout  string   `yaml:"timeout"`
	MinDelay string   `yaml:"min_delay"`
}

type rawDigestConfig struct {
	Size          int    `yaml:"size"`
	SubjectPrefix string `yaml:"subject_prefix"`
}

type rawMailConfig struct {
	Type     string `yaml:"type"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Timeout  string `yaml:"timeout"`
}

type rawScheduleConfig struct {
	Interval string `yaml:"interval"`
}

// Load reads and parses the YAML config file at path, validates it, and
// returns Config. Environment variables referenced in the file (e.g.
// ${SERPAPI_KEY}) are expanded before parsing so secrets never live in the
// file itself.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	searchTimeout, err := durationOr(raw.Search.Timeout, 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("parse search.timeout %q: %w", raw.Search.Timeout, err)
	}
	minDelay, err := durationOr(raw.Search.MinDelay, 2*time.Second)
	if err != nil {
		return nil, fmt.Errorf("parse search.min_delay %q: %w", raw.Search.MinDelay, err)
	}
	mailTimeout, err := durationOr(raw.Mail.Timeout, 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("parse mail.timeout %q: %w", raw.Mail.Timeout, err)
	}
	interval, err := durationOr(raw.Schedule.Interval, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("parse schedule.interval %q: %w", raw.Schedule.Interval, err)
	}

	cfg := &Config{
		Search: SearchConfig{
			Queries:  raw.Search.Queries,
			Location: raw.Search.Location,
			Pages:    intOr(raw.Search.Pages, 1),
			Language: stringOr(raw.Search.Language, "en"),
			Country:  stringOr(raw.Search.Country, "de"),
			APIKey:   raw.Search.APIKey,
			BaseURL:  stringOr(raw.Search.BaseURL, defaultBaseURL),
			Timeout:  searchTimeout,
			MinDelay: minDelay,
		},
		Digest: DigestConfig{
			Size:          intOr(raw.Digest.Size, defaultDigestSize),
			SubjectPrefix: stringOr(raw.Digest.SubjectPrefix, defaultSubjectPrefix),
		},
		Mail: MailConfig{
			Type:     stringOr(raw.Mail.Type, "log"),
			From:     raw.Mail.From,
			To:       raw.Mail.To,
			Host:     raw.Mail.Host,
			Port:     intOr(raw.Mail.Port, defaultSMTPPort),
			Username: raw.Mail.Username,
			Password: raw.Mail.Password,
			Timeout:  mailTimeout,
		},
		Schedule: ScheduleConfig{Interval: interval},
		Archive:  ArchiveConfig{Path: stringOr(raw.Archive.Path, defaultArchivePath)},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if len(cfg.Search.Queries) == 0 {
		return fmt.Errorf("search.queries must list at least one query")
	}
	for i, q := range cfg.Search.Queries {
		if q == "" {
			return fmt.Errorf("search.queries[%d] must not be empty", i)
		}
	}
	if cfg.Search.Location == "" {
		return fmt.Errorf("search.location is required")
	}
	if cfg.Search.Pages <= 0 {
		return fmt.Errorf("search.pages must be positive, got %d", cfg.Search.Pages)
	}
	if cfg.Search.APIKey == "" {
		return fmt.Errorf("search.api_key is required (set SERPAPI_KEY and reference it as ${SERPAPI_KEY})")
	}
	if cfg.Digest.Size <= 0 {
		return fmt.Errorf("digest.size must be positive, got %d", cfg.Digest.Size)
	}
	if cfg.Schedule.Interval <= 0 {
		return fmt.Errorf("schedule.interval must be positive, got %v", cfg.Schedule.Interval)
	}

	switch cfg.Mail.Type {
	case "log":
	case "smtp":
		if cfg.Mail.From == "" {
			return fmt.Errorf("mail.from is required when mail.type is \"smtp\"")
		}
		if cfg.Mail.To == "" {
			return fmt.Errorf("mail.to is required when mail.type is \"smtp\"")
		}
		if cfg.Mail.Host == "" {
			return fmt.Errorf("mail.host is required when mail.type is \"smtp\"")
		}
	default:
		return fmt.Errorf("mail.type must be \"smtp\" or \"log\", got %q", cfg.Mail.Type)
	}

	return nil
}

func durationOr(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	return time.ParseDuration(raw)
}

func stringOr(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	return raw
}

func intOr(raw, fallback int) int {
	if raw == 0 {
		return fallback
	}
	return raw
}
