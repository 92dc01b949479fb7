package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Email delivery (Resend-compatible HTTP API)
	ResendAPIKey  string
	ResendBaseURL string
	MailFrom      string
	AdminEmail    string
	// Admin API access (static service key, no user accounts in this system)
	AdminAPIKey string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitSubmitThreshold int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Email delivery
		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		ResendBaseURL: strings.TrimRight(getEnv("RESEND_BASE_URL", "https://api.resend.com"), "/"),
		MailFrom:      getEnv("MAIL_FROM", "quotes@notifications.salesupply.example"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "sales@salesupply.example"),
		// Admin API access
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		RateLimitSubmitThreshold: getEnvInt("RATE_LIMIT_SUBMIT_THRESHOLD", 10), // 10 submissions per window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY not configured. Quote notifications will be skipped.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}
	if cfg.AdminAPIKey == "" {
		log.Println("WARNING: ADMIN_API_KEY not configured. Admin endpoints will reject all requests.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
