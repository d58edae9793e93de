package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Telegram Bot Configuration
	BotToken string // Secret. Never log this value.
	ChatID   string // Numeric string, may be negative for group chats. Coerced per request.
	TopicID  string // Optional forum topic (message_thread_id), numeric string.
	// Telegram API endpoint, overridable for tests and self-hosted gateways
	TelegramAPIBaseURL string
	// Outbound request timeout for the sendMessage call
	RequestTimeoutSeconds int
	// Environment: "development" includes downstream error details in 500 responses
	AppEnv string
	// CORS Configuration
	EnableCORS bool
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		BotToken:              getEnv("BOT_TOKEN", ""),
		ChatID:                getEnv("CHAT_ID", ""),
		TopicID:               getEnv("TOPIC_ID", ""),
		TelegramAPIBaseURL:    getEnv("TELEGRAM_API_BASE_URL", "https://api.telegram.org"),
		RequestTimeoutSeconds: getEnvInt("REQUEST_TIMEOUT_SECONDS", 10),
		AppEnv:                getEnv("APP_ENV", "production"),
		EnableCORS:            getEnvBool("ENABLE_CORS", true),
	}

	// Warn early so a misconfigured deployment is visible in the boot log.
	// The contact endpoint itself answers 500 per request when these are missing.
	if cfg.BotToken == "" {
		log.Println("WARNING: BOT_TOKEN is missing. Contact form delivery will be unavailable.")
	}
	if cfg.ChatID == "" {
		log.Println("WARNING: CHAT_ID is missing. Contact form delivery will be unavailable.")
	}

	return cfg, nil
}

// IsDevelopment reports whether error responses may carry internal detail
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
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

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
