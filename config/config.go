package config

import (
	"os"
	"strings"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Port          string
	JWTSecret     string
	CORSOrigins   []string
	AdminEmail    string
	AdminPassword string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// Load reads configuration from the environment. godotenv is loaded in main
// before this runs, so .env values are already visible here.
func Load() Config {
	cfg := Config{
		Port:          envOrDefault("PORT", "8080"),
		JWTSecret:     envOrDefault("JWT_SECRET", ""),
		AdminEmail:    envOrDefault("ADMIN_EMAIL", "admin@tour.local"),
		AdminPassword: envOrDefault("ADMIN_PASSWORD", "admin123"),
	}

	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		cfg.CORSOrigins = []string{"*"}
		return cfg
	}
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	return cfg
}
