package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Log     LogConfig
	Console ConsoleConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type ConsoleConfig struct {
	Indent string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Log: LogConfig{
			Level:  getEnv("ORGTREE_LOG_LEVEL", "warn"),
			Format: getEnv("ORGTREE_LOG_FORMAT", "text"),
		},
		Console: ConsoleConfig{
			Indent: getEnv("ORGTREE_INDENT", "    "),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
