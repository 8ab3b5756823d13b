package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	MongoURI            string
	Port                string
	DBName              string
	AuditLogCollection  string
	InboxCollection     string
	AuthSecret          string
	Env                 string
	SessionCookieName   string
	SessionMaxAge       time.Duration
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	ShutdownTimeout     time.Duration
}

const (
	DefaultSessionCookieName = "selnet_session"
	// 5 days, matching the client-facing cookie contract
	DefaultSessionMaxAge = 5 * 24 * time.Hour
)

func LoadConfig() (*Config, error) {
	cfg := &Config{
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Port:               getEnv("PORT", "8080"),
		DBName:             getEnv("DB_NAME", "selnet_db"),
		AuditLogCollection: getEnv("COLLECTION_AUDIT_LOG", "audit_log"),
		InboxCollection:    getEnv("COLLECTION_INBOX", "inbox"),
		AuthSecret:         os.Getenv("AUTH_SECRET"),
		Env:                getEnv("GO_ENV", "development"),
		SessionCookieName:  getEnv("SESSION_COOKIE_NAME", DefaultSessionCookieName),
		SessionMaxAge:      getEnvDuration("SESSION_MAX_AGE", DefaultSessionMaxAge),
		ReadTimeout:        getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:       getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout:    getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.AuthSecret == "" {
		return fmt.Errorf("AUTH_SECRET is required")
	}
	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE must be positive")
	}
	return nil
}

// Production reports whether the secure-cookie policy applies.
func (c *Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Accept duration strings too, e.g. "120h"
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
