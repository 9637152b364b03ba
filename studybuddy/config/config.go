package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	JWTSecret string

	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string

	// Every Nth user message in a room triggers an AI summary.
	SummaryInterval int
	SummaryTimeout  time.Duration

	LogDir string
}

func LoadConfig() Config {
	// Missing .env is fine; system environment takes over.
	_ = godotenv.Load()

	return Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8000"),
		DBUser:          getEnv("DB_USER", ""),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", "studybuddy"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		OpenAIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MinIOEndpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOAccessKey:  getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:  getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:     getEnv("MINIO_BUCKET", "studybuddy-notes"),
		SummaryInterval: getEnvInt("SUMMARY_INTERVAL", 10),
		SummaryTimeout:  time.Duration(getEnvInt("SUMMARY_TIMEOUT_SECONDS", 20)) * time.Second,
		LogDir:          getEnv("LOG_DIR", "./logs"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
