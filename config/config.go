package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	Admin    AdminConfig
	Session  SessionConfig
	CORS     CORSConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type FirebaseConfig struct {
	// Exactly one of the two must be set. CredentialsJSON takes priority
	// when both are present, matching how the service is deployed.
	CredentialsJSON string
	CredentialsPath string
}

type AdminConfig struct {
	Email        string
	PasswordHash string
}

type SessionConfig struct {
	Secret   string
	TTLHours int

	// Redis connection for the session store. An empty Addr selects the
	// in-memory store (single-process mode).
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type CORSConfig struct {
	Origins []string
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Firebase: FirebaseConfig{
			CredentialsJSON: os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"),
			CredentialsPath: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		},
		Admin: AdminConfig{
			Email:        os.Getenv("ADMIN_EMAIL"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		},
		Session: SessionConfig{
			Secret:        getEnv("SESSION_SECRET", ""),
			TTLHours:      getEnvAsInt("SESSION_TTL_HOURS", 24),
			RedisAddr:     os.Getenv("REDIS_ADDR"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
		},
		CORS: CORSConfig{
			Origins: splitOrigins(getEnv("FRONTEND_ORIGINS", "http://localhost:3000")),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings without which the process cannot run.
// Admin credentials are deliberately not checked here: their absence is
// surfaced at login time as a configuration error, not at startup.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Firebase.CredentialsJSON == "" && c.Firebase.CredentialsPath == "" {
		return fmt.Errorf("FIREBASE_SERVICE_ACCOUNT_JSON or FIREBASE_CREDENTIALS_PATH is required")
	}

	if c.Session.TTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}

	return nil
}

// AdminConfigured reports whether both halves of the admin identity are set.
func (c *Config) AdminConfigured() bool {
	return c.Admin.Email != "" && c.Admin.PasswordHash != ""
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
