package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultMetAPIBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	CORS_ORIGIN      string
	MET_API_BASE_URL string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
	MET_API_BASE_URL = getEnv("MET_API_BASE_URL", defaultMetAPIBaseURL)
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
