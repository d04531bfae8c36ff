package services

import (
	"fmt"

	"github.com/yukikurage/realty-dashboard-api/internal/dto"
	"github.com/yukikurage/realty-dashboard-api/internal/repository"
)

// TeamService builds the team performance card
type TeamService struct {
	userRepo repository.UserRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(userRepo repository.UserRepository) *TeamService {
	return &TeamService{
		userRepo: userRepo,
	}
}

// performanceFigures holds the demo transaction count and revenue shown per team position.
var performanceFigures = []struct {
	transactions dto.PlaceholderCount
	revenue      dto.PlaceholderAmount
}{
	{8, "$2.4M"},
	{6, "$1.8M"},
	{4, "$1.2M"},
}

const (
	fallbackTransactions dto.PlaceholderCount  = 2
	fallbackRevenue      dto.PlaceholderAmount = "$800K"
)

// Performance returns one row per user. The figures come from a fixed table
// indexed by the user's position, not from stored transactions.
func (s *TeamService) Performance() ([]dto.TeamMemberPerformanceDTO, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	rows := make([]dto.TeamMemberPerformanceDTO, len(users))
	for i, user := range users {
		transactions, revenue := fallbackTransactions, fallbackRevenue
		if i < len(performanceFigures) {
			transactions = performanceFigures[i].transactions
			revenue = performanceFigures[i].revenue
		}

		rows[i] = dto.TeamMemberPerformanceDTO{
			ID:           user.ID,
			Name:         user.Name,
			Role:         user.Role,
			Initials:     dto.Initials(user.Name),
			Transactions: transactions,
			Revenue:      revenue,
		}
	}
	return rows, nil
}
