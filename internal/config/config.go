package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr      string
	StaticDir string

	JWTSecret string
	TokenTTL  time.Duration

	SessionTTL        time.Duration
	SessionRefreshTTL time.Duration
}

// Load reads configuration from environment variables, falling back to the
// defaults the server ships with.
func Load() Config {
	return Config{
		Addr:      getEnv("ADDR", "0.0.0.0:8165"),
		StaticDir: getEnv("STATIC_DIR", "static"),

		JWTSecret: getEnv("JWT_SECRET", "your-secret-key"),
		TokenTTL:  getEnvAsMinutes("JWT_EXPIRE_MINUTES", 30),

		SessionTTL:        getEnvAsMinutes("SESSION_EXPIRE_MINUTES", 30),
		SessionRefreshTTL: getEnvAsMinutes("SESSION_REFRESH_MINUTES", 2),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsMinutes(key string, defaultVal int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return time.Duration(n) * time.Minute
		}
	}
	return time.Duration(defaultVal) * time.Minute
}
