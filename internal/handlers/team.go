package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prakulkashyap2-hub/teamsync/internal/errors"
	"github.com/prakulkashyap2-hub/teamsync/internal/services"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// ListMembers returns the whole team. Members are seed data; there is no
// create, update, or delete path for them in this version.
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.teamService.ListMembers()
	if err != nil {
		errors.InternalError(c, "Failed to fetch team members")
		return
	}

	c.JSON(http.StatusOK, members)
}
