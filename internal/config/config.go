// Load envs from .env
// Load YAML config
// Provide default values
// Validate config

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Default search, overridable per run via flags
	Designation   string `yaml:"designation"`
	Location      string `yaml:"location"`
	Pages         int    `yaml:"pages"`
	JobTypeChoice int    `yaml:"job_type"`
	Locale        string `yaml:"locale"`
	FilterByType  bool   `yaml:"filter_by_type"`

	// Paths
	DatabasePath string `yaml:"database_path"`
	ExportDir    string `yaml:"export_dir"`
	SnapshotDir  string `yaml:"snapshot_dir"`

	// Browser behavior
	Headless         bool `yaml:"headless"`
	PageDelaySeconds int  `yaml:"page_delay_seconds"`

	// Optional run-summary notifications
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load() *Config {
	_ = godotenv.Load()

	// defaults, yaml overrides on top
	cfg := &Config{
		Designation:      "web",
		Location:         "Berlin",
		Pages:            2,
		JobTypeChoice:    1,
		Locale:           "de",
		FilterByType:     true,
		DatabasePath:     "data/jobs.db",
		ExportDir:        "exports",
		SnapshotDir:      "logs",
		Headless:         true,
		PageDelaySeconds: 7,
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	// Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		cfg.DatabasePath = dbPath
	}

	// Validate
	if cfg.Pages < 1 {
		log.Printf("Warning: pages must be at least 1, using 1")
		cfg.Pages = 1
	}
	if cfg.PageDelaySeconds < 0 {
		cfg.PageDelaySeconds = 0
	}
	if cfg.Locale == "" {
		cfg.Locale = "de"
	}

	return cfg
}
