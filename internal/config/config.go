package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/poofware/workorders-service/internal/utils"
)

const AppName = "workorders-service"

// Config holds all application configuration. The service is fully
// self-contained (in-memory data only), so everything has a default.
type Config struct {
	AppPort  string `env:"APP_PORT" envDefault:"8080"`
	AppUrl   string `env:"APP_URL" envDefault:"http://localhost:5173"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func LoadConfig() *Config {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse environment config")
	}

	utils.Logger.Infof("Loaded config for %s (port %s)", AppName, cfg.AppPort)
	return cfg
}
