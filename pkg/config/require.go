package config

import "log"

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

func MustPort(port int, envName string) {
	if port <= 0 || port > 65535 {
		log.Fatalf("invalid port in env %s: %d", envName, port)
	}
}
