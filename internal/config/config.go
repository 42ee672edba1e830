// Package config loads importer settings from the environment and an
// optional .env file
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// Environments
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Config holds all configuration for the importer
type Config struct {
	DDB       DDBConfig
	SRD       SRDConfig
	Redis     RedisConfig
	Import    ImportConfig
	Overrides string

	Environment string
	LogLevel    slog.Level
	HTTPTimeout time.Duration
}

// DDBConfig holds proxy API configuration
type DDBConfig struct {
	Endpoint   string
	Cobalt     string
	BetaKey    string
	CampaignID string
	DebugDir   string
}

// SRDConfig holds D&D 5e API configuration
type SRDConfig struct {
	BaseURL string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ImportConfig holds import policy toggles
type ImportConfig struct {
	AddSpellEffects    bool
	PactSpellsPrepared bool
}

// Load reads the given env files (".env" when none are given) and then the
// process environment. Variables already set in the environment win over
// file values; missing files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to load %s", f)
		}
	}

	vb := errors.NewValidationBuilder()
	cfg := &Config{
		DDB: DDBConfig{
			Endpoint:   getEnvOrDefault("DDB_API_ENDPOINT", "https://proxy.ddb.mrprimate.co.uk"),
			Cobalt:     os.Getenv("DDB_COBALT"),
			BetaKey:    os.Getenv("DDB_BETA_KEY"),
			CampaignID: os.Getenv("DDB_CAMPAIGN_ID"),
			DebugDir:   os.Getenv("DDB_DEBUG_JSON_DIR"),
		},
		SRD: SRDConfig{
			BaseURL: getEnvOrDefault("DND5E_API_URL", "https://www.dnd5eapi.co/api/2014/"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsInt(vb, "REDIS_DB", 0),
		},
		Import: ImportConfig{
			AddSpellEffects:    getEnvAsBool(vb, "ADD_SPELL_EFFECTS", false),
			PactSpellsPrepared: getEnvAsBool(vb, "PACT_SPELLS_PREPARED", false),
		},
		Overrides:   os.Getenv("OVERRIDES_FILE"),
		Environment: getEnvOrDefault("ENVIRONMENT", EnvironmentDevelopment),
		LogLevel:    getEnvAsLevel(vb, "LOG_LEVEL", slog.LevelInfo),
		HTTPTimeout: getEnvAsDuration(vb, "HTTP_TIMEOUT", 30*time.Second),
	}

	if cfg.Redis.DB < 0 {
		vb.Field("REDIS_DB", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireProxy reports whether the settings needed for proxy calls are set
func (c *Config) RequireProxy() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("DDB_API_ENDPOINT", c.DDB.Endpoint, vb)
	errors.ValidateRequired("DDB_COBALT", c.DDB.Cobalt, vb)
	return vb.Build()
}

// IsProduction reports whether the importer runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(vb *errors.ValidationBuilder, key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		vb.Fieldf(key, "invalid integer %q", value)
		return defaultValue
	}
	return i
}

func getEnvAsBool(vb *errors.ValidationBuilder, key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		vb.Fieldf(key, "invalid boolean %q", value)
		return defaultValue
	}
	return b
}

func getEnvAsDuration(vb *errors.ValidationBuilder, key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		vb.Fieldf(key, "invalid duration %q", value)
		return defaultValue
	}
	return d
}

func getEnvAsLevel(vb *errors.ValidationBuilder, key string, defaultValue slog.Level) slog.Level {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(value))); err != nil {
		vb.Fieldf(key, "invalid log level %q", value)
		return defaultValue
	}
	return level
}
