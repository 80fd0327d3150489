package main

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("OWM_API_URL", "https://api.example.com/data/3.0/onecall")
	t.Setenv("OWM_API_KEY", "test_owm_key")
	t.Setenv("LOCATIONS_FILE", "locations_data.json")
}

func TestConfig(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(t *testing.T)
		check func(t *testing.T, cfg *appConfig)
	}{
		{
			name:  "defaults",
			setup: func(t *testing.T) {},
			check: func(t *testing.T, cfg *appConfig) {
				assert.Equal(t, ".", cfg.outputDir)
				assert.Equal(t, int64(3600), cfg.baseHostOffsetSec)
				assert.Equal(t, 10*time.Second, cfg.httpClient.Timeout)
				assert.False(t, cfg.devMode)
				assert.Empty(t, cfg.metricsPushURL)
			},
		},
		{
			name: "dev mode and overrides",
			setup: func(t *testing.T) {
				t.Setenv("DEV_MODE", "true")
				t.Setenv("OUTPUT_DIR", "/tmp/reports")
				t.Setenv("HOST_UTC_OFFSET_SECONDS", "0")
				t.Setenv("HTTP_TIMEOUT_SECONDS", "30")
				t.Setenv("METRICS_PUSH_URL", "http://pushgateway:9091")
			},
			check: func(t *testing.T, cfg *appConfig) {
				assert.True(t, cfg.devMode)
				assert.Equal(t, "/tmp/reports", cfg.outputDir)
				assert.Equal(t, int64(0), cfg.baseHostOffsetSec)
				assert.Equal(t, 30*time.Second, cfg.httpClient.Timeout)
				assert.Equal(t, "http://pushgateway:9091", cfg.metricsPushURL)
			},
		},
		{
			name: "invalid optional values fall back",
			setup: func(t *testing.T) {
				t.Setenv("DEV_MODE", "not_a_bool")
				t.Setenv("HOST_UTC_OFFSET_SECONDS", "not_an_int")
				t.Setenv("HTTP_TIMEOUT_SECONDS", "not_an_int")
			},
			check: func(t *testing.T, cfg *appConfig) {
				assert.False(t, cfg.devMode)
				assert.Equal(t, int64(3600), cfg.baseHostOffsetSec)
				assert.Equal(t, 10*time.Second, cfg.httpClient.Timeout)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			tc.setup(t)

			cfg := config()
			require.NotNil(t, cfg)
			assert.Equal(t, "https://api.example.com/data/3.0/onecall", cfg.owmURL)
			assert.Equal(t, "test_owm_key", cfg.owmKey)
			assert.NotNil(t, cfg.logger)
			tc.check(t, cfg)
		})
	}
}

func TestNewRunContext(t *testing.T) {
	setRequiredEnv(t)
	cfg := config()

	run := newRunContext(cfg)

	assert.Regexp(t, regexp.MustCompile(`^\d{4}_\d{2}_\d{2}_$`), run.FilePrefix)
	assert.Equal(t, time.Now().Format("2006_01_02_"), run.FilePrefix)
	assert.NotEqual(t, run.RunID.String(), "00000000-0000-0000-0000-000000000000")
	assert.NotNil(t, run.HostZone)

	want := cfg.baseHostOffsetSec
	if time.Now().IsDST() {
		want += 3600
	}
	assert.Equal(t, want, run.HostOffsetSeconds)
}
