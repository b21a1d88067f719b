package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	OpenAIKey     string
	OpenAIModel   string
	ChatMaxTokens int
	IsDemo        bool
}

func Load() Config {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		IsDemo:      getEnv("DEMO_MODE", "false") == "true",
	}

	maxTokens, err := strconv.Atoi(getEnv("CHAT_MAX_TOKENS", "200"))
	if err != nil || maxTokens <= 0 {
		maxTokens = 200
	}
	cfg.ChatMaxTokens = maxTokens

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
