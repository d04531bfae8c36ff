package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/realty-dashboard-api/internal/dto"
	apierrors "github.com/yukikurage/realty-dashboard-api/internal/errors"
	"github.com/yukikurage/realty-dashboard-api/internal/services"
)

type FormHandler struct {
	formService *services.FormService
}

func NewFormHandler(formService *services.FormService) *FormHandler {
	return &FormHandler{
		formService: formService,
	}
}

// ListForms returns forms with their agent, filtered by agentId when given
func (h *FormHandler) ListForms(c *gin.Context) {
	var (
		forms []dto.FormWithAgentDTO
		err   error
	)
	if agentID := c.Query("agentId"); agentID != "" {
		forms, err = h.formService.ListByAgent(agentID)
	} else {
		forms, err = h.formService.List()
	}
	if err != nil {
		log.Printf("Failed to list forms: %v", err)
		apierrors.InternalError(c, "Failed to fetch forms")
		return
	}

	c.JSON(http.StatusOK, forms)
}

// CreateForm creates a new transaction form
func (h *FormHandler) CreateForm(c *gin.Context) {
	var req struct {
		Type            string     `json:"type" binding:"required"`
		PropertyAddress string     `json:"propertyAddress" binding:"required"`
		PropertyCity    string     `json:"propertyCity" binding:"required"`
		AgentID         string     `json:"agentId" binding:"required"`
		Status          string     `json:"status" binding:"required"`
		DueDate         *time.Time `json:"dueDate" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	form, err := h.formService.Create(services.CreateFormInput{
		Type:            req.Type,
		PropertyAddress: req.PropertyAddress,
		PropertyCity:    req.PropertyCity,
		AgentID:         req.AgentID,
		Status:          req.Status,
		DueDate:         *req.DueDate,
	})
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		log.Printf("Failed to create form: %v", err)
		apierrors.InternalError(c, "Failed to create form")
		return
	}

	c.JSON(http.StatusCreated, form)
}

// UpdateFormStatus changes the status of a form. A missing status is
// rejected before the form is looked up.
func (h *FormHandler) UpdateFormStatus(c *gin.Context) {
	var req struct {
		Status *string `json:"status"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if req.Status == nil {
		apierrors.MissingField(c, "Status is required")
		return
	}

	form, err := h.formService.UpdateStatus(c.Param("id"), *req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStatusRequired):
			apierrors.MissingField(c, "Status is required")
		case errors.Is(err, services.ErrFormNotFound):
			apierrors.NotFound(c, "Form not found")
		default:
			log.Printf("Failed to update form status: %v", err)
			apierrors.InternalError(c, "Failed to update form status")
		}
		return
	}

	c.JSON(http.StatusOK, form)
}
