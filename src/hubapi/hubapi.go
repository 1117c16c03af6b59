package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/promo-labs/web3-promo-hub/src/hubapi/config"
	"github.com/promo-labs/web3-promo-hub/src/hubapi/webserver"
	"github.com/promo-labs/web3-promo-hub/src/shared/data"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := data.MustSQLite(cfg.SQLitePath)
	if err := data.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	router := webserver.New(cfg, db)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Hub API listening on %s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
