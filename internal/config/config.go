package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ClientID      string
	ClientSecret  string
	BackendURL    string
	FrontendURL   string
	DatabaseURL   string
	SessionSecret string
	Port          string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	clientID := os.Getenv("CLIENT_ID")
	clientSecret := os.Getenv("CLIENT_SECRET")
	backendURL := os.Getenv("BACKEND_URL")
	frontendURL := os.Getenv("FRONTEND_URL")
	databaseURL := os.Getenv("DATABASE_URL")
	sessionSecret := os.Getenv("SESSION_SECRET")

	if clientID == "" || clientSecret == "" || backendURL == "" || frontendURL == "" || databaseURL == "" || sessionSecret == "" {
		log.Fatal("Environment variables (CLIENT_ID, CLIENT_SECRET, BACKEND_URL, FRONTEND_URL, DATABASE_URL, SESSION_SECRET) are required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "10000"
	}

	return &Config{
		ClientID:      clientID,
		ClientSecret:  clientSecret,
		BackendURL:    backendURL,
		FrontendURL:   frontendURL,
		DatabaseURL:   databaseURL,
		SessionSecret: sessionSecret,
		Port:          port,
	}, nil
}

// RedirectURL is the OAuth callback Google sends the browser back to.
func (c *Config) RedirectURL() string {
	return c.BackendURL + "/callback"
}
