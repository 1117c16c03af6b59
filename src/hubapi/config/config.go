package config

import "os"

type Config struct {
	Port       string
	SQLitePath string
}

func Load() Config {
	return Config{
		Port:       getenv("API_PORT", "8080"),
		SQLitePath: getenv("SQLITE_PATH", "web3hub.db"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
