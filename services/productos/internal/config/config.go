package config

import "github.com/Skotchmaster/crud_services/pkg/config"

type ServiceConfig struct {
	config.Config
}

func Load() ServiceConfig {
	cfg := config.Load(config.Config{
		ServiceName: "productos",
		ServerPort:  8000,
		DatabaseURL: "database.db",
		LogLevel:    "info",
		KafkaTopic:  "producto_events",
	})

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustPort(cfg.ServerPort, "SERVER_PORT")

	return ServiceConfig{Config: cfg}
}
