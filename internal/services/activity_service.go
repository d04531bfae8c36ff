package services

import (
	"fmt"

	"github.com/yukikurage/realty-dashboard-api/internal/models"
	"github.com/yukikurage/realty-dashboard-api/internal/repository"
)

// ActivityService handles the activity feed
type ActivityService struct {
	activityRepo repository.ActivityRepository
	userRepo     repository.UserRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo repository.ActivityRepository, userRepo repository.UserRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		userRepo:     userRepo,
	}
}

// CreateActivityInput represents input for creating an activity.
// Empty RelatedID and AgentID are stored as absent.
type CreateActivityInput struct {
	Description string
	Type        string
	RelatedID   *string
	AgentID     *string
}

// List returns the feed, most recent first
func (s *ActivityService) List() ([]models.Activity, error) {
	activities, err := s.activityRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// Create stores a new feed entry
func (s *ActivityService) Create(input CreateActivityInput) (*models.Activity, error) {
	agentID := nonEmpty(input.AgentID)
	if agentID != nil {
		if err := ensureAgentExists(s.userRepo, "agentId", *agentID); err != nil {
			return nil, err
		}
	}

	activity := &models.Activity{
		Description: input.Description,
		Type:        input.Type,
		RelatedID:   nonEmpty(input.RelatedID),
		AgentID:     agentID,
	}

	if err := s.activityRepo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return activity, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
