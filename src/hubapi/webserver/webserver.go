// Package webserver exposes a read-only REST view over the bot's store for
// admin and ops tooling. The bot remains the only writer.
package webserver

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/promo-labs/web3-promo-hub/src/hubapi/config"
)

func New(cfg config.Config, db *gorm.DB) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	attachRoutes(g, db)
	return g
}

func attachRoutes(g *gin.Engine, db *gorm.DB) {
	g.GET("/healthz", health(db))

	v1 := g.Group("/v1")
	v1.GET("/projects", listProjects(db))
	v1.GET("/services", listServices(db))
	v1.GET("/wallets", listWallets(db))
}
