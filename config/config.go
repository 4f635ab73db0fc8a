package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. It is loaded once at startup and
// never mutated afterwards.
type Config struct {
	Port      string
	MongoURI  string
	Database  string
	JWTSecret []byte
}

var current *Config

// Load reads configuration from the environment (optionally seeded from a
// .env file) and stores it as the process config. JWT_SECRET and MONGODB_URI
// are required.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, errors.New("MONGODB_URI must be set")
	}

	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "blogging_db"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	current = &Config{
		Port:      port,
		MongoURI:  uri,
		Database:  dbName,
		JWTSecret: []byte(secret),
	}
	return current, nil
}

// JWTSecret returns the signing secret of the loaded config.
func JWTSecret() []byte {
	if current == nil {
		return nil
	}
	return current.JWTSecret
}
