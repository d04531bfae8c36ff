package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/realty-dashboard-api/internal/errors"
	"github.com/yukikurage/realty-dashboard-api/internal/services"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ListActivities returns the activity feed, most recent first
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.activityService.List()
	if err != nil {
		log.Printf("Failed to list activities: %v", err)
		apierrors.InternalError(c, "Failed to fetch activities")
		return
	}

	c.JSON(http.StatusOK, activities)
}

// CreateActivity adds an entry to the feed
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req struct {
		Description string  `json:"description" binding:"required"`
		Type        string  `json:"type" binding:"required"`
		RelatedID   *string `json:"relatedId"`
		AgentID     *string `json:"agentId"`
	}
	if !bindJSON(c, &req) {
		return
	}

	activity, err := h.activityService.Create(services.CreateActivityInput{
		Description: req.Description,
		Type:        req.Type,
		RelatedID:   req.RelatedID,
		AgentID:     req.AgentID,
	})
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		log.Printf("Failed to create activity: %v", err)
		apierrors.InternalError(c, "Failed to create activity")
		return
	}

	c.JSON(http.StatusCreated, activity)
}
