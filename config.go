package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type appConfig struct {
	owmURL            string
	owmKey            string
	locationsPath     string
	outputDir         string
	metricsPushURL    string
	baseHostOffsetSec int64
	httpClient        *http.Client
	devMode           bool
	logger            *slog.Logger
}

// getRequiredEnv retrieves an environment variable by key, and fatals if it's not set.
func getRequiredEnv(key string, logger *slog.Logger) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		logger.Error("environment variable must be set", "key", key)
		os.Exit(1)
	}
	return val
}

// getEnv retrieves an environment variable by key, with a fallback value.
func getEnv(key, fallback string, logger *slog.Logger) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer, with a fallback value.
func getEnvAsInt(key string, fallback int, logger *slog.Logger) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		logger.Warn("invalid integer value for environment variable, using fallback", "key", key, "value", valStr, "error", err)
		return fallback
	}
	return val
}

func config() *appConfig {
	devModeStr := os.Getenv("DEV_MODE")
	devMode, err := strconv.ParseBool(devModeStr)
	if err != nil {
		devMode = false
	}

	var logger *slog.Logger
	if devMode {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	httpTimeoutSec := getEnvAsInt("HTTP_TIMEOUT_SECONDS", 10, logger)

	// The host's standard-time offset from UTC in seconds. Daylight saving is
	// detected at run time and added on top (see newRunContext).
	baseOffset := getEnvAsInt("HOST_UTC_OFFSET_SECONDS", 3600, logger)

	cfg := appConfig{
		owmURL:            getRequiredEnv("OWM_API_URL", logger),
		owmKey:            getRequiredEnv("OWM_API_KEY", logger),
		locationsPath:     getRequiredEnv("LOCATIONS_FILE", logger),
		outputDir:         getEnv("OUTPUT_DIR", ".", logger),
		metricsPushURL:    os.Getenv("METRICS_PUSH_URL"),
		baseHostOffsetSec: int64(baseOffset),
		httpClient: &http.Client{
			Timeout: time.Duration(httpTimeoutSec) * time.Second,
		},
		devMode: devMode,
		logger:  logger,
	}

	return &cfg
}

// newRunContext derives the run-scoped immutable state: the resolved host
// UTC offset (standard offset plus the daylight-saving hour when in effect),
// the date prefix shared by every output file of the run, and a run ID for
// logs and metrics.
func newRunContext(cfg *appConfig) RunContext {
	now := time.Now()
	return RunContext{
		RunID:             uuid.New(),
		HostOffsetSeconds: hostUTCOffset(cfg.baseHostOffsetSec, now),
		HostZone:          now.Location(),
		FilePrefix:        now.Format("2006_01_02_"),
		StartedAt:         now,
	}
}
