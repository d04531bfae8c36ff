package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/realty-dashboard-api/internal/errors"
	"github.com/yukikurage/realty-dashboard-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	teamService      *services.TeamService
}

func NewDashboardHandler(dashboardService *services.DashboardService, teamService *services.TeamService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		teamService:      teamService,
	}
}

// GetStats returns the stats cards
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		log.Printf("Failed to build dashboard stats: %v", err)
		apierrors.InternalError(c, "Failed to fetch dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetTeamPerformance returns the team performance rows
func (h *DashboardHandler) GetTeamPerformance(c *gin.Context) {
	rows, err := h.teamService.Performance()
	if err != nil {
		log.Printf("Failed to build team performance: %v", err)
		apierrors.InternalError(c, "Failed to fetch team performance")
		return
	}

	c.JSON(http.StatusOK, rows)
}
