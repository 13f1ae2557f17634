package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Question bank
	ReadmePath string // markdown source the bank is parsed from
	CachePath  string // parsed-question cache file

	// User state
	DBPath string

	// Static assets
	PublicDir string
	ImagesDir string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout: getDurationDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		ReadmePath:      getenvDefault("README_PATH", "README.md"),
		CachePath:       getenvDefault("CACHE_PATH", "questions.json"),
		DBPath:          getenvDefault("DB_PATH", "practice.db"),
		PublicDir:       getenvDefault("PUBLIC_DIR", "public"),
		ImagesDir:       getenvDefault("IMAGES_DIR", "images"),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}
