package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Token        string
	GuildID      string
	AdminIDs     []string
	SQLitePath   string
	RedisURL     string
	CoinGeckoURL string
}

// Load builds the bot configuration from the environment. The token is the
// only hard requirement; everything else has a usable default.
func Load() (Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return Config{}, fmt.Errorf("DISCORD_TOKEN is not set")
	}

	return Config{
		Token:        token,
		GuildID:      os.Getenv("GUILD_ID"),
		AdminIDs:     ParseAdminIDs(os.Getenv("ADMIN_IDS")),
		SQLitePath:   getenv("SQLITE_PATH", "web3hub.db"),
		RedisURL:     os.Getenv("REDIS_URL"),
		CoinGeckoURL: getenv("COINGECKO_API", "https://api.coingecko.com/api/v3"),
	}, nil
}

// ParseAdminIDs splits a comma-separated list of user IDs, dropping empty
// entries so trailing commas are harmless.
func ParseAdminIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
