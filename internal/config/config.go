package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	DBPath       string        `envconfig:"DB_PATH" default:"./data/budgetzz.db"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`  // debug|info|warn|error
	HTTPAddr     string        `envconfig:"HTTP_ADDR" default:":8080"` // healthz and manual runs
	EvalInterval time.Duration `envconfig:"EVAL_INTERVAL" default:"24h"`
	RunOnStart   bool          `envconfig:"RUN_ON_START" default:"false"`

	// Push delivery is disabled when empty.
	BotToken string `envconfig:"BOT_TOKEN"`

	SMTP SMTP
}

// SMTP configures the email channel. Keys are prefixed with SMTP_.
type SMTP struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"587"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	From     string `envconfig:"FROM" default:"alerts@budgetzz.app"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
