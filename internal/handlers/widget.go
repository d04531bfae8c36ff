package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/realty-dashboard-api/internal/dto"
	"github.com/yukikurage/realty-dashboard-api/internal/middleware"
	"github.com/yukikurage/realty-dashboard-api/internal/services"
)

type WidgetHandler struct {
	widgetService *services.WidgetService
}

func NewWidgetHandler(widgetService *services.WidgetService) *WidgetHandler {
	return &WidgetHandler{
		widgetService: widgetService,
	}
}

// ListPlatforms returns the external platforms the widget links out to
func (h *WidgetHandler) ListPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, h.widgetService.Platforms())
}

// GetContext returns the CRM context the widget was opened with, or null
func (h *WidgetHandler) GetContext(c *gin.Context) {
	context, _ := middleware.GetWidgetContext(c)
	c.JSON(http.StatusOK, dto.WidgetContextDTO{Context: context})
}
