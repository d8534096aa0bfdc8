// Package config loads service settings from configs/config.yml, a .env file
// and ENERGY_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ENERGY"

// minSigningKeyLen is the shortest HMAC key accepted for signing tokens.
const minSigningKeyLen = 16

// placeholderSigningKey is the sample value shipped in older configs.
const placeholderSigningKey = "change-me"

// Config is the resolved service configuration.
type Config struct {
	Port     string
	LogLevel string
	DBPath   string

	ModelPath    string
	ModelURL     string
	ModelTimeout time.Duration

	SigningKey string
	TokenTTL   time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("model.path", "home_energy_predictor.json")
	v.SetDefault("model.url", "")
	v.SetDefault("model.timeout", "5s")
	v.SetDefault("auth.token_ttl", "1h")
}

// Load reads configuration. dirs lists where to look for config.yml and
// defaults to "configs". A missing config file is not an error.
func Load(dirs ...string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	if len(dirs) == 0 {
		dirs = []string{"configs"}
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Port:         v.GetString("port"),
		LogLevel:     strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		DBPath:       v.GetString("db.path"),
		ModelPath:    v.GetString("model.path"),
		ModelURL:     v.GetString("model.url"),
		ModelTimeout: v.GetDuration("model.timeout"),
		SigningKey:   v.GetString("auth.signing_key"),
		TokenTTL:     v.GetDuration("auth.token_ttl"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	port, err := strconv.Atoi(strings.TrimPrefix(c.Port, ":"))
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %q", c.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db path cannot be empty")
	}
	if c.ModelTimeout <= 0 || c.ModelTimeout > time.Minute {
		return fmt.Errorf("model timeout must be between 0 and 1m, got %v", c.ModelTimeout)
	}
	key := strings.TrimSpace(c.SigningKey)
	switch {
	case key == "":
		return errors.New("auth signing key is required, set ENERGY_AUTH_SIGNING_KEY")
	case key == placeholderSigningKey:
		return errors.New("auth signing key must not be the placeholder value")
	case len(key) < minSigningKeyLen:
		return fmt.Errorf("auth signing key must be at least %d bytes", minSigningKeyLen)
	}
	if c.TokenTTL < time.Minute {
		return fmt.Errorf("token ttl must be at least 1m, got %v", c.TokenTTL)
	}
	return nil
}
