package controller

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dotdo/internal/cache"
)

// HealthController serves liveness and readiness probes.
type HealthController struct {
	db    *sql.DB
	cache *cache.Cache
}

// NewHealthController wires the probes. cache may be nil.
func NewHealthController(db *sql.DB, c *cache.Cache) *HealthController {
	return &HealthController{db: db, cache: c}
}

// Health returns 200 if the process is alive.
func (hc *HealthController) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Ready returns 200 if the database (and Redis, when configured) is
// reachable.
func (hc *HealthController) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := hc.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database ping failed"})
		return
	}
	if hc.cache != nil {
		if err := hc.cache.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "redis unavailable"})
			return
		}
	}
	c.String(http.StatusOK, "OK")
}
