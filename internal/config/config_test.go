package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAEXBaseURL, cfg.AEXBaseURL)
	assert.Equal(t, DefaultHubSpotBaseURL, cfg.HubSpotBaseURL)
	assert.Equal(t, DefaultLookbackHours, cfg.LookbackHours)
	assert.Equal(t, DefaultSnapshotPath, cfg.SnapshotPath)
	assert.Empty(t, cfg.AEXToken)
	assert.Empty(t, cfg.HubSpotToken)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("AEX_API_TOKEN", "src-token")
	t.Setenv("HUBSPOT_ACCESS_TOKEN", "crm-token")
	t.Setenv("AEX_BASE_URL", "http://aex.test")
	t.Setenv("HUBSPOT_BASE_URL", "http://hs.test")
	t.Setenv("LOOKBACK_HOURS", "48")
	t.Setenv("SNAPSHOT_PATH", "/tmp/out.json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "src-token", cfg.AEXToken)
	assert.Equal(t, "crm-token", cfg.HubSpotToken)
	assert.Equal(t, "http://aex.test", cfg.AEXBaseURL)
	assert.Equal(t, "http://hs.test", cfg.HubSpotBaseURL)
	assert.Equal(t, 48, cfg.LookbackHours)
	assert.Equal(t, "/tmp/out.json", cfg.SnapshotPath)
}

func TestLoad_InvalidLookbackEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOOKBACK_HOURS", "soon")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_TOMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "servicesync.toml")
	content := `
aex_base_url = "http://file.aex"
lookback_hours = 72
snapshot_path = "file.json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://file.aex", cfg.AEXBaseURL)
	assert.Equal(t, 72, cfg.LookbackHours)
	assert.Equal(t, "file.json", cfg.SnapshotPath)
	// Unset file keys keep defaults.
	assert.Equal(t, DefaultHubSpotBaseURL, cfg.HubSpotBaseURL)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOOKBACK_HOURS", "6")

	path := filepath.Join(t.TempDir(), "servicesync.toml")
	require.NoError(t, os.WriteFile(path, []byte("lookback_hours = 72\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.LookbackHours)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLookbackHours, cfg.LookbackHours)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		stage   Stage
		wantErr error
	}{
		{
			name:  "extract with source token",
			cfg:   Config{AEXToken: "x", LookbackHours: 24},
			stage: StageExtract,
		},
		{
			name:    "extract without source token",
			cfg:     Config{LookbackHours: 24},
			stage:   StageExtract,
			wantErr: ErrMissingAEXToken,
		},
		{
			name:  "extract does not need CRM token",
			cfg:   Config{AEXToken: "x"},
			stage: StageExtract,
		},
		{
			name:  "reconcile with CRM token",
			cfg:   Config{HubSpotToken: "y"},
			stage: StageReconcile,
		},
		{
			name:    "reconcile without CRM token",
			cfg:     Config{AEXToken: "x"},
			stage:   StageReconcile,
			wantErr: ErrMissingHubSpotToken,
		},
		{
			name:    "negative lookback",
			cfg:     Config{AEXToken: "x", LookbackHours: -1},
			stage:   StageExtract,
			wantErr: ErrNegativeLookback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate(tt.stage)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AEX_API_TOKEN", "HUBSPOT_ACCESS_TOKEN",
		"AEX_BASE_URL", "HUBSPOT_BASE_URL",
		"LOOKBACK_HOURS", "SNAPSHOT_PATH",
	} {
		t.Setenv(key, "")
	}
}
