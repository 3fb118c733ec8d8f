// Package config loads application settings and owns the database connection.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pdemaers/skb-voedingsdagboek/apperror"
)

// Config holds all configurable values for the app.
type Config struct {
	Env  string
	Addr string

	MongoUsername   string
	MongoPassword   string
	MongoClusterURL string
	DatabaseName    string

	RosterCacheTTL time.Duration
	SessionIdleTTL time.Duration
}

// Load reads the .env file (if present) and the environment, and fails fast
// when a Mongo credential is missing. Absence of any credential is a
// configuration error; there is no point starting without them.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:  getEnv("ENV", "development"),
		Addr: getEnv("ADDR", ":8080"),
	}

	required := map[string]*string{
		"MONGO_USERNAME":    &cfg.MongoUsername,
		"MONGO_PASSWORD":    &cfg.MongoPassword,
		"MONGO_CLUSTER_URL": &cfg.MongoClusterURL,
		"DATABASE_NAME":     &cfg.DatabaseName,
	}
	for key, dst := range required {
		val := os.Getenv(key)
		if val == "" {
			return nil, apperror.Configuration("missing required setting: " + key)
		}
		*dst = val
	}

	var err error
	cfg.RosterCacheTTL, err = time.ParseDuration(getEnv("ROSTER_CACHE_TTL", "5m"))
	if err != nil {
		return nil, apperror.Configuration(fmt.Sprintf("invalid ROSTER_CACHE_TTL: %v", err))
	}
	cfg.SessionIdleTTL, err = time.ParseDuration(getEnv("SESSION_IDLE_TTL", "30m"))
	if err != nil {
		return nil, apperror.Configuration(fmt.Sprintf("invalid SESSION_IDLE_TTL: %v", err))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
