package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prakulkashyap2-hub/teamsync/internal/errors"
	"github.com/prakulkashyap2-hub/teamsync/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats returns the three dashboard aggregates in one call
func (h *StatsHandler) GetStats(c *gin.Context) {
	summary, err := h.statsService.Summary()
	if err != nil {
		errors.InternalError(c, "Failed to compute stats")
		return
	}

	c.JSON(http.StatusOK, summary)
}
