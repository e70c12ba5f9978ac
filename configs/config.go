package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	LLMAPIKey        string
	LLMBaseURL       string
	LLMModel         string
	LLMProvider      string
	ServiceName      string
	ServiceVersion   string
}

func LoadConfig() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGO_URI", ""),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "curriculum_service"),
		RabbitMQURI:      getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		LLMAPIKey:        getEnvOrDefault("API_KEY", ""),
		LLMBaseURL:       getEnvOrDefault("BASE_URL", ""),
		LLMModel:         getEnvOrDefault("MODEL", "llama3.2:3b"),
		LLMProvider:      getEnvOrDefault("PROVIDER", "ollama"),
		ServiceName:      getEnvOrDefault("SERVICE_NAME", "curriculum-service"),
		ServiceVersion:   getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
