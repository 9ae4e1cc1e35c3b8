package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"urtbot/internal/app/infrastructure/config"
	"urtbot/pkg/logger"
)

type Handlers struct {
	log     logger.Logger
	manager *config.Manager
	started time.Time
}

func New(log logger.Logger, manager *config.Manager) *Handlers {
	return &Handlers{
		log:     log,
		manager: manager,
		started: time.Now(),
	}
}

func (h *Handlers) IndexHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":   "urtbot",
		"uptime": time.Since(h.started).Truncate(time.Second).String(),
	})
}
