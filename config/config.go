package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings shared by every command.
type Config struct {
	DBName       string
	HistoryLimit int
}

// Load reads an optional .env file, then the environment, falling back to
// defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DBName:       getEnv("CALC_DB", "calc"),
		HistoryLimit: getEnvInt("CALC_HISTORY_LIMIT", 20),
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
