package config

import "github.com/Skotchmaster/crud_services/pkg/config"

type ServiceConfig struct {
	config.Config
}

func Load() ServiceConfig {
	cfg := config.Load(config.Config{
		ServiceName: "usuarios",
		ServerPort:  8001,
		DatabaseURL: "usuarios.db",
		LogLevel:    "info",
		KafkaTopic:  "usuario_events",
	})

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustPort(cfg.ServerPort, "SERVER_PORT")

	return ServiceConfig{Config: cfg}
}
