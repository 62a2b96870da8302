package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"github.com/riskibarqy/match-predictor/internal/platform/resilience"
)

// SyncConfig configures the football-data.org loader command.
type SyncConfig struct {
	LogLevel                logging.Level
	BaseURL                 string
	Token                   string
	Timeout                 time.Duration
	MaxRetries              int
	Competitions            []string
	Workers                 int
	MatchLimit              int
	Breaker                 resilience.BreakerConfig
	DatasetPath             string
	WritePostgres           bool
	DBURL                   string
	DBDisablePreparedBinary bool
}

func LoadSync() (SyncConfig, error) {
	token := strings.TrimSpace(getEnv("FOOTBALLDATA_TOKEN", ""))
	if token == "" {
		return SyncConfig{}, fmt.Errorf("FOOTBALLDATA_TOKEN is required")
	}

	timeout, err := time.ParseDuration(getEnv("FOOTBALLDATA_TIMEOUT", "20s"))
	if err != nil {
		return SyncConfig{}, fmt.Errorf("parse FOOTBALLDATA_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return SyncConfig{}, fmt.Errorf("FOOTBALLDATA_TIMEOUT must be > 0")
	}
	maxRetries, err := getEnvAsInt("FOOTBALLDATA_MAX_RETRIES", 2)
	if err != nil {
		return SyncConfig{}, fmt.Errorf("parse FOOTBALLDATA_MAX_RETRIES: %w", err)
	}
	if maxRetries < 0 {
		return SyncConfig{}, fmt.Errorf("FOOTBALLDATA_MAX_RETRIES must be >= 0")
	}
	workers, err := getEnvAsInt("FOOTBALLDATA_WORKERS", 4)
	if err != nil {
		return SyncConfig{}, fmt.Errorf("parse FOOTBALLDATA_WORKERS: %w", err)
	}
	if workers < 1 {
		return SyncConfig{}, fmt.Errorf("FOOTBALLDATA_WORKERS must be >= 1")
	}
	matchLimit, err := getEnvAsInt("FOOTBALLDATA_MATCH_LIMIT", 15)
	if err != nil {
		return SyncConfig{}, fmt.Errorf("parse FOOTBALLDATA_MATCH_LIMIT: %w", err)
	}
	if matchLimit < 1 {
		return SyncConfig{}, fmt.Errorf("FOOTBALLDATA_MATCH_LIMIT must be >= 1")
	}
	competitions := splitCSV(getEnv("FOOTBALLDATA_COMPETITIONS", "PL,PD,BL1,SA,FL1,CL"))
	if len(competitions) == 0 {
		return SyncConfig{}, fmt.Errorf("FOOTBALLDATA_COMPETITIONS cannot be empty")
	}

	breaker := resilience.DefaultBreakerConfig()
	breaker.Enabled, err = strconv.ParseBool(getEnv("FOOTBALLDATA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return SyncConfig{}, fmt.Errorf("parse FOOTBALLDATA_CIRCUIT_ENABLED: %w", err)
	}
	breaker.FailureThreshold, err = getEnvAsInt("FOOTBALLDATA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return SyncConfig{}, fmt.Errorf("parse FOOTBALLDATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if breaker.FailureThreshold < 1 {
		return SyncConfig{}, fmt.Errorf("FOOTBALLDATA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	breaker.OpenTimeout, err = time.ParseDuration(getEnv("FOOTBALLDATA_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return SyncConfig{}, fmt.Errorf("parse FOOTBALLDATA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if breaker.OpenTimeout <= 0 {
		return SyncConfig{}, fmt.Errorf("FOOTBALLDATA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	writePostgres, err := strconv.ParseBool(getEnv("SYNC_WRITE_POSTGRES", "false"))
	if err != nil {
		return SyncConfig{}, fmt.Errorf("parse SYNC_WRITE_POSTGRES: %w", err)
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if writePostgres && dbURL == "" {
		return SyncConfig{}, fmt.Errorf("DB_URL is required when SYNC_WRITE_POSTGRES=true")
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return SyncConfig{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	datasetPath := strings.TrimSpace(getEnv("DATASET_PATH", "data/matches.csv"))
	if datasetPath == "" {
		return SyncConfig{}, fmt.Errorf("DATASET_PATH cannot be empty")
	}

	return SyncConfig{
		LogLevel:                logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		BaseURL:                 strings.TrimSpace(getEnv("FOOTBALLDATA_BASE_URL", "https://api.football-data.org/v4")),
		Token:                   token,
		Timeout:                 timeout,
		MaxRetries:              maxRetries,
		Competitions:            competitions,
		Workers:                 workers,
		MatchLimit:              matchLimit,
		Breaker:                 breaker,
		DatasetPath:             datasetPath,
		WritePostgres:           writePostgres,
		DBURL:                   dbURL,
		DBDisablePreparedBinary: dbDisablePreparedBinary,
	}, nil
}
