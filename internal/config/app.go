package config

import (
	"os"
	"strings"
)

const defaultPort = "8080"

// BasePath prefixes every route, e.g. "/api". Empty by default.
func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Port() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok && port != "" {
		return port
	}
	return defaultPort
}

func Addr() string {
	return ":" + Port()
}

// AllowedOrigins reads the comma separated APP_ALLOWED_ORIGINS. Nil means
// any origin.
func AllowedOrigins() []string {
	return splitOrigins(os.Getenv("APP_ALLOWED_ORIGINS"))
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
