// internal/config/config.go
//
// Environment-driven configuration for both subcommands.
//
// Load reads an optional .env file (godotenv) and then the process
// environment. Unset or empty variables take the defaults below; cobra flags
// in main override individual fields afterwards.

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Defaults.
const (
	DefaultAPIURL   = "http://localhost:5175"
	DefaultPort     = "5175"
	DefaultLogLevel = "info"
	DefaultTokenTTL = 24 * time.Hour
	DefaultOrigin   = "http://localhost:5173"
)

// Client configures `wordle play`.
type Client struct {
	APIURL   string // WORDLE_API_URL
	Mode     string // WORDLE_MODE ("" or "daily")
	LogLevel string // LOG_LEVEL
	LogFile  string // LOG_FILE; empty discards logs
}

// Server configures `wordle serve`.
type Server struct {
	Port         string        // PORT
	LogLevel     string        // LOG_LEVEL
	DBPath       string        // DB_PATH; empty uses the memory store
	JWTSecret    string        // JWT_SECRET
	TokenTTL     time.Duration // GAME_TOKEN_TTL
	DailySalt    string        // DAILY_SALT
	ClientOrigin string        // CLIENT_ORIGIN
	AnswersFile  string        // WORDS_ANSWERS_FILE
	AllowedFile  string        // WORDS_ALLOWED_FILE
}

// LoadDotEnv loads .env from the working directory if present.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// LoadClient reads the client configuration from the environment.
func LoadClient() Client {
	return Client{
		APIURL:   getEnv("WORDLE_API_URL", DefaultAPIURL),
		Mode:     getEnv("WORDLE_MODE", ""),
		LogLevel: getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFile:  getEnv("LOG_FILE", ""),
	}
}

// LoadServer reads the server configuration from the environment.
func LoadServer() (Server, error) {
	cfg := Server{
		Port:         getEnv("PORT", DefaultPort),
		LogLevel:     getEnv("LOG_LEVEL", DefaultLogLevel),
		DBPath:       getEnv("DB_PATH", ""),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:     DefaultTokenTTL,
		DailySalt:    getEnv("DAILY_SALT", "wordle"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", DefaultOrigin),
		AnswersFile:  getEnv("WORDS_ANSWERS_FILE", ""),
		AllowedFile:  getEnv("WORDS_ALLOWED_FILE", ""),
	}
	if v := os.Getenv("GAME_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Server{}, fmt.Errorf("config: GAME_TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
