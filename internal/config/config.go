package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Words   WordsConfig
	Auth    AuthConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ClientOrigin string
	Env          string        // "development" or "production"
	GameTTL      time.Duration // games older than this are evicted
}

// WordsConfig holds word-list and dictionary settings.
type WordsConfig struct {
	RootsFile      string // empty → embedded list
	DictionaryFile string // empty → embedded list
	DBPath         string
	Language       string
	DailySalt      string
}

// AuthConfig holds token and admin settings.
type AuthConfig struct {
	JWTSecret         string
	GameTokenTTL      time.Duration
	AdminPasswordHash string // bcrypt hash; empty disables /admin
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load reads a .env file if one exists, then builds the configuration
// from environment variables with defaults.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5175"),
			ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
			Env:          getEnv("ENV", "development"),
			GameTTL:      time.Duration(getEnvInt("GAME_TTL_HOURS", 24)) * time.Hour,
		},
		Words: WordsConfig{
			RootsFile:      getEnv("WORDS_ROOTS_FILE", ""),
			DictionaryFile: getEnv("WORDS_DICTIONARY_FILE", ""),
			DBPath:         getEnv("DB_PATH", "./data/dictionary.db"),
			Language:       getEnv("DICTIONARY_LANGUAGE", "en"),
			DailySalt:      getEnv("DAILY_SALT", "local_dev_salt"),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "dev_secret_change_me"),
			GameTokenTTL:      time.Duration(getEnvInt("GAME_TOKEN_TTL_HOURS", 24)) * time.Hour,
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt returns k parsed as an int, or def.
func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
