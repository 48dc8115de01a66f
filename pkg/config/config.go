package config

import (
	"os"
	"time"
)

type AppConfig struct {
	RateLimitEnabled bool
	RateLimitConfigs map[string]RateLimitConfig

	Environment string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		RateLimitEnabled: true,
		RateLimitConfigs: map[string]RateLimitConfig{
			"/api/auth/signup": {
				Requests: 5,
				Window:   time.Minute,
			},
			"/api/auth/login": {
				Requests: 10,
				Window:   time.Minute,
			},
			"default": {
				Requests: 100,
				Window:   time.Minute,
			},
		},
		Environment: "development",
	}
}

func GetServerPort() string {
	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	return port
}
