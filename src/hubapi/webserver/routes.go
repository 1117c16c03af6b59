package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/promo-labs/web3-promo-hub/src/shared/types"
	"gorm.io/gorm"
)

const maxPageSize = 100

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// listProjects returns the voting board ordered by vote count.
func listProjects(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var projects []types.Project
		err := db.Order("votes DESC").Limit(pageSize(c)).Find(&projects).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"err": "query failed"})
			return
		}
		c.JSON(http.StatusOK, projects)
	}
}

// listServices returns the latest submissions; ?active=1 narrows the list
// to offerings still marked active.
func listServices(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Order("created_at DESC").Limit(pageSize(c))
		if c.Query("active") == "1" {
			q = q.Where("active = ?", true)
		}

		var list []types.Service
		if err := q.Find(&list).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"err": "query failed"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func listWallets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []types.Wallet
		if err := db.Find(&list).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"err": "query failed"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func pageSize(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || n < 1 || n > maxPageSize {
		return 20
	}
	return n
}
