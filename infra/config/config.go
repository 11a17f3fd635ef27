package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds application-level configuration.
type Config struct {
	Env string `env:"TRAVELGRAM_ENV" env-default:"production" env-description:"Deployment name reported to Sentry"`

	Sheet struct {
		ID          string `env:"TRAVELGRAM_SHEET_ID" env-description:"Google Sheet holding the Posts/Comments tables (required to load a feed)"`
		URLTemplate string `env:"TRAVELGRAM_SHEET_URL" env-default:"https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s" env-description:"CSV export URL; first %s is the sheet ID, second the sheet name"`
	}

	Media struct {
		BaseURL     string `env:"TRAVELGRAM_MEDIA_BASE_URL" env-default:"https://philippmasur.de/research/photogram/" env-description:"Prefix for media file names"`
		Extension   string `env:"TRAVELGRAM_MEDIA_EXT" env-default:".jpg" env-description:"Suffix for media file names"`
		Placeholder string `env:"TRAVELGRAM_PLACEHOLDER" env-default:"/placeholder.svg" env-description:"Shown when a post or avatar has no media"`
	}

	Log struct {
		File  string `env:"TRAVELGRAM_LOG_FILE" env-description:"Log file (default: <tmp>/travelgram.log)"`
		Level string `env:"TRAVELGRAM_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	}

	SentryDSN   string `env:"TRAVELGRAM_SENTRY_DSN" env-description:"Report errors to Sentry when set"`
	MetricsAddr string `env:"TRAVELGRAM_METRICS_ADDR" env-description:"Serve Prometheus metrics on this address when set"`
}

// Load reads configuration from environment variables. When envFile is not
// empty it is loaded first; variables already set in the environment win.
//
// A missing TRAVELGRAM_SHEET_ID is not an error here: it is reported when
// the feed is loaded so the participant sees it in place of the feed.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if strings.Count(cfg.Sheet.URLTemplate, "%s") != 2 {
		return Config{}, fmt.Errorf("invalid TRAVELGRAM_SHEET_URL: needs two %%s placeholders")
	}
	if err := requireHTTPURL(fmt.Sprintf(cfg.Sheet.URLTemplate, "id", "sheet")); err != nil {
		return Config{}, fmt.Errorf("invalid TRAVELGRAM_SHEET_URL: %w", err)
	}
	if err := requireHTTPURL(cfg.Media.BaseURL); err != nil {
		return Config{}, fmt.Errorf("invalid TRAVELGRAM_MEDIA_BASE_URL: %w", err)
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid TRAVELGRAM_LOG_LEVEL %q", cfg.Log.Level)
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(os.TempDir(), "travelgram.log")
	}

	return cfg, nil
}

// Usage describes every supported variable.
func Usage() string {
	var cfg Config
	help, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return help
}

func requireHTTPURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("must be an absolute URL")
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("only http and https are allowed")
	}
	return nil
}
