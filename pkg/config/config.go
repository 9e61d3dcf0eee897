package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ServiceName string

	ServerPort int

	DatabaseURL string

	LogLevel string

	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads the environment on top of def. Unset or malformed variables
// keep the value from def.
func Load(def Config) Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", def.ServiceName),

		ServerPort: EnvIntDefault("SERVER_PORT", def.ServerPort),

		DatabaseURL: EnvDefault("DATABASE_URL", def.DatabaseURL),

		LogLevel: EnvDefault("LOG_LEVEL", def.LogLevel),

		KafkaBrokers: CSVDefault(os.Getenv("KAFKA_BROKERS"), def.KafkaBrokers),
		KafkaTopic:   EnvDefault("KAFKA_TOPIC", def.KafkaTopic),
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func CSVDefault(v string, def []string) []string {
	if out := CSV(v); len(out) > 0 {
		return out
	}
	return def
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
