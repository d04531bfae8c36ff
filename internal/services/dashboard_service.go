package services

import (
	"fmt"

	"github.com/yukikurage/realty-dashboard-api/internal/constants"
	"github.com/yukikurage/realty-dashboard-api/internal/dto"
	"github.com/yukikurage/realty-dashboard-api/internal/models"
	"github.com/yukikurage/realty-dashboard-api/internal/repository"
)

// DashboardService builds the aggregated views of the dashboard
type DashboardService struct {
	formRepo repository.FormRepository
	userRepo repository.UserRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(formRepo repository.FormRepository, userRepo repository.UserRepository) *DashboardService {
	return &DashboardService{
		formRepo: formRepo,
		userRepo: userRepo,
	}
}

// Stats returns the stats cards. Active transactions and monthly revenue are placeholders.
func (s *DashboardService) Stats() (*dto.DashboardStats, error) {
	forms, err := s.formRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}

	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	pending := 0
	for _, form := range forms {
		if form.Status == models.FormStatusPendingReview || form.Status == models.FormStatusOverdue {
			pending++
		}
	}

	return &dto.DashboardStats{
		ActiveTransactions: constants.DemoActiveTransactions,
		PendingForms:       pending,
		TeamMembers:        len(users),
		MonthlyRevenue:     constants.DemoMonthlyRevenue,
	}, nil
}
