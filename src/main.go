package main

import (
	"context"
	"log"
	"net/http"

	"fincoach-server/src/api"
	"fincoach-server/src/config"
	"fincoach-server/src/db"
	"fincoach-server/src/llm"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	db.InitCache()

	coach, err := llm.NewOpenAIClient(llm.Config{
		APIKey:    cfg.OpenAIKey,
		Model:     cfg.OpenAIModel,
		MaxTokens: cfg.ChatMaxTokens,
	})
	if err != nil {
		log.Fatalf("LLM client setup failed: %v", err)
	}

	// Router
	router := api.NewRouter(pool, coach, cfg)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
