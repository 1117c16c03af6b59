package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/promo-labs/web3-promo-hub/src/hubbot/bot"
	"github.com/promo-labs/web3-promo-hub/src/hubbot/config"
	"github.com/promo-labs/web3-promo-hub/src/shared/data"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Best effort; production deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db := data.MustSQLite(cfg.SQLitePath)
	if err := data.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := data.SeedWallets(db); err != nil {
		log.Fatalf("seed wallets: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb = data.MustRedis(cfg.RedisURL)
	}

	b, err := bot.New(bot.Config{
		Token:        cfg.Token,
		GuildID:      cfg.GuildID,
		AdminIDs:     cfg.AdminIDs,
		CoinGeckoURL: cfg.CoinGeckoURL,
		DB:           db,
		Redis:        rdb,
	})
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	if err := b.Start(); err != nil {
		log.Fatalf("bot start: %v", err)
	}

	log.Println("Web3 Promotion Hub bot is running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := b.Stop(); err != nil {
		log.Printf("bot stop: %v", err)
	}
	log.Println("Bot stopped gracefully")
}
