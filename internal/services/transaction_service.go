package services

import (
	"fmt"

	"github.com/yukikurage/realty-dashboard-api/internal/models"
	"github.com/yukikurage/realty-dashboard-api/internal/repository"
)

// TransactionService handles property transactions
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	userRepo        repository.UserRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo repository.TransactionRepository, userRepo repository.UserRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

// CreateTransactionInput represents input for creating a transaction
type CreateTransactionInput struct {
	PropertyAddress string
	PropertyCity    string
	AgentID         string
	Status          string
	Type            string
}

// List returns every transaction
func (s *TransactionService) List() ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// ListByAgent returns the transactions handled by one agent
func (s *TransactionService) ListByAgent(agentID string) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.GetByAgent(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for agent: %w", err)
	}
	return transactions, nil
}

// Create stores a new transaction after checking its agent
func (s *TransactionService) Create(input CreateTransactionInput) (*models.Transaction, error) {
	if err := ensureAgentExists(s.userRepo, "agentId", input.AgentID); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		PropertyAddress: input.PropertyAddress,
		PropertyCity:    input.PropertyCity,
		AgentID:         input.AgentID,
		Status:          input.Status,
		Type:            input.Type,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}
