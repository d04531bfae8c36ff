package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/realty-dashboard-api/internal/errors"
	"github.com/yukikurage/realty-dashboard-api/internal/models"
	"github.com/yukikurage/realty-dashboard-api/internal/services"
)

type TransactionHandler struct {
	transactionService *services.TransactionService
}

func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions returns transactions, filtered by agentId when given
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var (
		transactions []models.Transaction
		err          error
	)
	if agentID := c.Query("agentId"); agentID != "" {
		transactions, err = h.transactionService.ListByAgent(agentID)
	} else {
		transactions, err = h.transactionService.List()
	}
	if err != nil {
		log.Printf("Failed to list transactions: %v", err)
		apierrors.InternalError(c, "Failed to fetch transactions")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction records a new property transaction
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req struct {
		PropertyAddress string `json:"propertyAddress" binding:"required"`
		PropertyCity    string `json:"propertyCity" binding:"required"`
		AgentID         string `json:"agentId" binding:"required"`
		Status          string `json:"status" binding:"required"`
		Type            string `json:"type" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	transaction, err := h.transactionService.Create(services.CreateTransactionInput{
		PropertyAddress: req.PropertyAddress,
		PropertyCity:    req.PropertyCity,
		AgentID:         req.AgentID,
		Status:          req.Status,
		Type:            req.Type,
	})
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		log.Printf("Failed to create transaction: %v", err)
		apierrors.InternalError(c, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, transaction)
}
