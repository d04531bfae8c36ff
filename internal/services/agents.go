package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/realty-dashboard-api/internal/dto"
	"github.com/yukikurage/realty-dashboard-api/internal/repository"
)

// agentDirectory resolves agent IDs to their display shape. A miss resolves to nil,
// which the API renders as "agent": null.
type agentDirectory map[string]dto.AgentDTO

func loadAgentDirectory(userRepo repository.UserRepository) (agentDirectory, error) {
	users, err := userRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load agents: %w", err)
	}

	dir := make(agentDirectory, len(users))
	for _, user := range users {
		dir[user.ID] = dto.ToAgentDTO(user)
	}
	return dir, nil
}

func (d agentDirectory) lookup(agentID string) *dto.AgentDTO {
	agent, ok := d[agentID]
	if !ok {
		return nil
	}
	return &agent
}

// ensureAgentExists rejects writes that reference an unknown user.
func ensureAgentExists(userRepo repository.UserRepository, field, agentID string) error {
	if _, err := userRepo.GetByID(agentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fieldError(field, fmt.Sprintf("no user with id %q", agentID))
		}
		return fmt.Errorf("failed to verify agent: %w", err)
	}
	return nil
}
