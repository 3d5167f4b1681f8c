package config

import "os"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
}

// Load reads the environment. An empty MongoURI means the server runs on the
// in-memory store (local development only; nothing survives a restart).
func Load() *Config {
	return &Config{
		Port:     getenv("PORT", "3000"),
		MongoURI: getenv("MONGO_URI", ""),
		MongoDB:  getenv("MONGO_DB", "exercise_tracker"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
