package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Candidate provider (mock-data API)
	ProviderBaseURL string
	ProviderKey     string
	ProviderSchema  string
	ProviderCount   int

	// Storage backend: "file", "postgres" or "memory"
	StorageBackend string
	DataDir        string
	DatabaseURL    string

	UploadsDir string
	LogLevel   string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		log.Println("Attempting to load from parent directory...")
		err = godotenv.Load("../../.env")
		if err != nil {
			log.Println("Warning: Could not load .env file, using environment variables")
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	schema := os.Getenv("PROVIDER_SCHEMA")
	if schema == "" {
		schema = "candidates_schema"
	}

	count := 100
	if v := os.Getenv("PROVIDER_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			count = n
		}
	}

	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "file"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}

	return &Config{
		Port:            port,
		ProviderBaseURL: os.Getenv("PROVIDER_BASE_URL"),
		ProviderKey:     os.Getenv("PROVIDER_KEY"),
		ProviderSchema:  schema,
		ProviderCount:   count,
		StorageBackend:  backend,
		DataDir:         dataDir,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		UploadsDir:      uploadsDir,
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}
}
