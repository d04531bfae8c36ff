package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/realty-dashboard-api/internal/dto"
	"github.com/yukikurage/realty-dashboard-api/internal/models"
	"github.com/yukikurage/realty-dashboard-api/internal/repository"
)

// FormService handles transaction form business logic
type FormService struct {
	formRepo repository.FormRepository
	userRepo repository.UserRepository
}

// NewFormService creates a new FormService
func NewFormService(formRepo repository.FormRepository, userRepo repository.UserRepository) *FormService {
	return &FormService{
		formRepo: formRepo,
		userRepo: userRepo,
	}
}

// CreateFormInput represents input for creating a form
type CreateFormInput struct {
	Type            string
	PropertyAddress string
	PropertyCity    string
	AgentID         string
	Status          string
	DueDate         time.Time
}

// List returns every form with its agent attached
func (s *FormService) List() ([]dto.FormWithAgentDTO, error) {
	forms, err := s.formRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	return s.enrich(forms)
}

// ListByAgent returns the forms assigned to one agent with the agent attached
func (s *FormService) ListByAgent(agentID string) ([]dto.FormWithAgentDTO, error) {
	forms, err := s.formRepo.GetByAgent(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms for agent: %w", err)
	}
	return s.enrich(forms)
}

func (s *FormService) enrich(forms []models.Form) ([]dto.FormWithAgentDTO, error) {
	agents, err := loadAgentDirectory(s.userRepo)
	if err != nil {
		return nil, err
	}

	enriched := make([]dto.FormWithAgentDTO, len(forms))
	for i, form := range forms {
		enriched[i] = dto.ToFormWithAgentDTO(form, agents.lookup(form.AgentID))
	}
	return enriched, nil
}

// Create stores a new form after checking that its agent exists
func (s *FormService) Create(input CreateFormInput) (*models.Form, error) {
	if err := ensureAgentExists(s.userRepo, "agentId", input.AgentID); err != nil {
		return nil, err
	}

	form := &models.Form{
		Type:            input.Type,
		PropertyAddress: input.PropertyAddress,
		PropertyCity:    input.PropertyCity,
		AgentID:         input.AgentID,
		Status:          input.Status,
		DueDate:         input.DueDate,
	}

	if err := s.formRepo.Create(form); err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}

	return form, nil
}

// UpdateStatus changes the status of a form
func (s *FormService) UpdateStatus(formID, status string) (*models.Form, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}

	form, err := s.formRepo.UpdateStatus(formID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to update form status: %w", err)
	}

	return form, nil
}
