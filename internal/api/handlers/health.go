package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	db    Pinger
	redis Pinger
}

func NewHealthHandler(db, redis Pinger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func checkDependency(ctx context.Context, name string, p Pinger) string {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		log.Printf("Health: %s unreachable: %v", name, err)
		return "down"
	}
	return "up"
}

// HealthCheck handles the health check endpoint
//
//	@Summary		Health check
//	@Description	Reports the state of the database and Redis. Answers 503 when either is down.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"API is healthy"
//	@Failure		503	{object}	map[string]string	"A dependency is down"
//	@Router			/health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	db := checkDependency(ctx, "database", h.db)
	redis := checkDependency(ctx, "redis", h.redis)

	status, code := "ok", http.StatusOK
	if db != "up" || redis != "up" {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "database": db, "redis": redis})
}
