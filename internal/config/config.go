// Package config provides process configuration for the servicesync
// pipeline. Values are resolved once at startup: environment variables
// take precedence over an optional TOML file, which takes precedence
// over built-in defaults. A .env file in the working directory is
// loaded into the environment first, if present.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultAEXBaseURL     = "https://fno.national-us.aex.systems"
	DefaultHubSpotBaseURL = "https://api.hubapi.com"
	DefaultLookbackHours  = 24
	DefaultSnapshotPath   = "service_changes_data.json"
)

// Configuration errors.
var (
	// ErrMissingAEXToken indicates AEX_API_TOKEN is not set.
	ErrMissingAEXToken = errors.New("config: AEX_API_TOKEN is not set")

	// ErrMissingHubSpotToken indicates HUBSPOT_ACCESS_TOKEN is not set.
	ErrMissingHubSpotToken = errors.New("config: HUBSPOT_ACCESS_TOKEN is not set")

	// ErrNegativeLookback indicates a negative lookback window.
	ErrNegativeLookback = errors.New("config: lookback hours must not be negative")
)

// Stage identifies which pipeline stage a configuration is validated for.
// The source-system token is only required for extraction and the CRM
// token only for reconciliation, so each stage validates its own needs.
type Stage int

const (
	// StageExtract is the extraction stage (source system → snapshot).
	StageExtract Stage = iota

	// StageReconcile is the reconciliation stage (snapshot → CRM).
	StageReconcile
)

// Config holds all settings for one pipeline run.
type Config struct {
	// AEXToken is the bearer token for the source (AEX/FNO) API.
	AEXToken string

	// HubSpotToken is the bearer token for the HubSpot CRM API.
	HubSpotToken string

	// AEXBaseURL is the source API base URL.
	AEXBaseURL string

	// HubSpotBaseURL is the CRM API base URL.
	HubSpotBaseURL string

	// LookbackHours is the size of the change window in hours.
	LookbackHours int

	// SnapshotPath is where the extraction snapshot is written and
	// the reconciliation stage reads it back from.
	SnapshotPath string
}

// fileConfig is the TOML file schema. Only non-secret settings may be
// set from the file; tokens always come from the environment.
type fileConfig struct {
	AEXBaseURL     string `toml:"aex_base_url"`
	HubSpotBaseURL string `toml:"hubspot_base_url"`
	LookbackHours  int    `toml:"lookback_hours"`
	SnapshotPath   string `toml:"snapshot_path"`
}

// Load resolves configuration from defaults, the optional TOML file at
// path (ignored when path is empty or the file does not exist), and the
// environment, in increasing precedence.
func Load(path string) (Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := Config{
		AEXBaseURL:     DefaultAEXBaseURL,
		HubSpotBaseURL: DefaultHubSpotBaseURL,
		LookbackHours:  DefaultLookbackHours,
		SnapshotPath:   DefaultSnapshotPath,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env resolution
		case err != nil:
			return Config{}, fmt.Errorf("read config file: %w", err)
		default:
			var fc fileConfig
			if err := toml.Unmarshal(data, &fc); err != nil {
				return Config{}, fmt.Errorf("parse config file: %w", err)
			}
			if fc.AEXBaseURL != "" {
				cfg.AEXBaseURL = fc.AEXBaseURL
			}
			if fc.HubSpotBaseURL != "" {
				cfg.HubSpotBaseURL = fc.HubSpotBaseURL
			}
			if fc.LookbackHours != 0 {
				cfg.LookbackHours = fc.LookbackHours
			}
			if fc.SnapshotPath != "" {
				cfg.SnapshotPath = fc.SnapshotPath
			}
		}
	}

	cfg.AEXToken = os.Getenv("AEX_API_TOKEN")
	cfg.HubSpotToken = os.Getenv("HUBSPOT_ACCESS_TOKEN")
	if v := os.Getenv("AEX_BASE_URL"); v != "" {
		cfg.AEXBaseURL = v
	}
	if v := os.Getenv("HUBSPOT_BASE_URL"); v != "" {
		cfg.HubSpotBaseURL = v
	}
	if v := os.Getenv("SNAPSHOT_PATH"); v != "" {
		cfg.SnapshotPath = v
	}
	if v := os.Getenv("LOOKBACK_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse LOOKBACK_HOURS: %w", err)
		}
		cfg.LookbackHours = n
	}

	return cfg, nil
}

// Validate checks that everything the given stage needs is present.
// Called once at startup; components assume a validated config.
func (c Config) Validate(stage Stage) error {
	if c.LookbackHours < 0 {
		return ErrNegativeLookback
	}
	switch stage {
	case StageExtract:
		if c.AEXToken == "" {
			return ErrMissingAEXToken
		}
	case StageReconcile:
		if c.HubSpotToken == "" {
			return ErrMissingHubSpotToken
		}
	}
	return nil
}
