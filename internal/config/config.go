package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"todoboard/internal/model"
)

type Config struct {
	LogLevel      string
	DefaultFilter model.Filter
	NoticeHoldSec int
}

func Load() Config {
	// a missing .env is fine, env vars still apply
	_ = godotenv.Load()

	filter, err := model.ParseFilter(getEnv("DEFAULT_FILTER", "all"))
	if err != nil {
		filter = model.FilterAll
	}

	return Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DefaultFilter: filter,
		NoticeHoldSec: getEnvInt("NOTICE_HOLD_SECONDS", 2),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
