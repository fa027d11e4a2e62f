package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults used when the corresponding key is absent from both the env file
// and the environment.
const (
	DefaultPort               = "8080"
	DefaultTokenExpiryMinutes = 21600 // 15 days
	DefaultResetTokenTTLMin   = 10
	DefaultLoginMaxAttempts   = 5
	DefaultLoginWindowMinutes = 5
	DefaultResetMaxAttempts   = 3
	DefaultResetWindowMinutes = 15
	DefaultBaseURL            = "http://localhost:8080"
	DefaultSMTPPort           = "587"
	DefaultFromName           = "Support Team"
)

type Config struct {
	Env  string
	Port string

	DBURL string

	TokenSecret        string
	TokenExpiryMinutes int

	ResetTokenTTLMinutes int
	BaseURL              string

	LoginMaxAttempts   int
	LoginWindowMinutes int
	ResetMaxAttempts   int
	ResetWindowMinutes int

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// Load reads config/.env.<env> (dev by default), letting real environment
// variables take precedence, and fails fast on missing required keys.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := "config/.env.dev"
	if env == "production" {
		envFile = "config/.env.prod"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("no %s file found, relying on environment", envFile)
	}

	return &Config{
		Env:                  env,
		Port:                 getEnv("PORT", DefaultPort),
		DBURL:                mustGetEnv("DB_URL"),
		TokenSecret:          mustGetEnv("TOKEN_SECRET"),
		TokenExpiryMinutes:   getEnvAsInt("TOKEN_EXPIRY", DefaultTokenExpiryMinutes),
		ResetTokenTTLMinutes: getEnvAsInt("RESET_TOKEN_TTL", DefaultResetTokenTTLMin),
		BaseURL:              getEnv("BASE_URL", DefaultBaseURL),
		LoginMaxAttempts:     getEnvAsInt("LOGIN_MAX_ATTEMPTS", DefaultLoginMaxAttempts),
		LoginWindowMinutes:   getEnvAsInt("LOGIN_WINDOW_MINUTES", DefaultLoginWindowMinutes),
		ResetMaxAttempts:     getEnvAsInt("RESET_MAX_ATTEMPTS", DefaultResetMaxAttempts),
		ResetWindowMinutes:   getEnvAsInt("RESET_WINDOW_MINUTES", DefaultResetWindowMinutes),
		SMTPHost:             getEnv("SMTP_HOST", ""),
		SMTPPort:             getEnv("SMTP_PORT", DefaultSMTPPort),
		SMTPUsername:         getEnv("SMTP_USERNAME", ""),
		SMTPPassword:         getEnv("SMTP_PASSWORD", ""),
		FromEmail:            getEnv("EMAIL_FROM", ""),
		FromName:             getEnv("EMAIL_FROM_NAME", DefaultFromName),
	}
}

// IsEmailConfigured reports whether outbound mail can actually be sent.
func (c *Config) IsEmailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != ""
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

// ResetURL builds the link embedded in the password-reset email.
func (c *Config) ResetURL(plainToken string) string {
	return fmt.Sprintf("%s/auth/reset-password/%s", c.BaseURL, plainToken)
}
