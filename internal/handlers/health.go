package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"umbaer-craft-backend/internal/config"
	"umbaer-craft-backend/internal/models"
)

type HealthHandler struct {
	cfg     *config.Config
	tickets TicketOpener
}

func NewHealthHandler(cfg *config.Config, tickets TicketOpener) *HealthHandler {
	return &HealthHandler{cfg: cfg, tickets: tickets}
}

// Health godoc
// @Summary     Health check
// @Description Returns the health status of the API and the state of the Discord gateway connection.
// @Tags        health
// @Accept      json
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	discordState := "unconfigured"
	if h.cfg.DiscordConfigured() {
		discordState = "connecting"
		if h.tickets != nil && h.tickets.Ready() {
			discordState = "ready"
		}
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Discord: discordState,
	})
}
