package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Logging
	LogJSON  bool
	LogDebug bool

	// Entity-extraction collaborator
	LLMProvider string // "openai", "groq", "gemini", or "none"
	LLMModel    string
	LLMAPIKey   string

	// Linguistic preprocessing collaborator ("on" unless disabled)
	PreprocessorEnabled bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	llmProvider := os.Getenv("LLM_PROVIDER")
	if llmProvider == "" {
		llmProvider = "none"
	}

	// API key lookup depends on the provider
	llmAPIKey := ""
	switch llmProvider {
	case "openai":
		llmAPIKey = os.Getenv("OPENAI_API_KEY")
	case "groq":
		llmAPIKey = os.Getenv("GROQ_API_KEY")
	case "gemini":
		llmAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	return &Config{
		Port:                port,
		LogJSON:             envBool("LOG_JSON"),
		LogDebug:            envBool("LOG_DEBUG"),
		LLMProvider:         llmProvider,
		LLMModel:            os.Getenv("LLM_MODEL"),
		LLMAPIKey:           llmAPIKey,
		PreprocessorEnabled: !strings.EqualFold(os.Getenv("NLP_PREPROCESSOR"), "off"),
	}
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
