package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Client    ClientConfig
	Threshold ThresholdConfig
	Database  DatabaseConfig
	Gemini    GeminiConfig
}

type ServerConfig struct {
	AppEnv     string
	Port       string
	CORSOrigin string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type ClientConfig struct {
	BaseURL string
	// Timeout of zero means requests never time out.
	Timeout time.Duration
}

type ThresholdConfig struct {
	// Store is one of "file", "mysql" or "memory".
	Store string
	File  string
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// LoadEnv reads the configuration from the environment. Call godotenv.Load first
// so values from a .env file are visible here.
func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:     getEnv("APP_ENV", "production"),
			Port:       getEnv("SERVER_PORT", "8080"),
			CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "json"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Client: ClientConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
			Timeout: time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 0)) * time.Second,
		},
		Threshold: ThresholdConfig{
			Store: getEnv("THRESHOLD_STORE", "file"),
			File:  getEnv("THRESHOLD_FILE", defaultThresholdFile()),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DB_DSN_PRIMARY", ""),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME", 300)) * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
	}
}

// IsDevelopment reports whether APP_ENV selects the development profile.
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development"
}

func defaultThresholdFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "threshold.json"
	}
	return filepath.Join(home, ".stockdash", "threshold.json")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
