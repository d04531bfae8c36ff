package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/realty-dashboard-api/internal/constants"
	"github.com/yukikurage/realty-dashboard-api/internal/dto"
	"github.com/yukikurage/realty-dashboard-api/internal/models"
	"github.com/yukikurage/realty-dashboard-api/internal/repository"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo  repository.TaskRepository
	userRepo  repository.UserRepository
	suggester TaskSuggester
}

// NewTaskService creates a new TaskService. suggester may be nil when no AI backend is configured.
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, suggester TaskSuggester) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		suggester: suggester,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title     string
	Priority  string
	DueDate   time.Time
	AgentID   string
	Completed int
}

// SuggestTasksInput represents input for AI task suggestions
type SuggestTasksInput struct {
	Text    string
	AgentID string
}

// List returns every task with its agent attached
func (s *TaskService) List() ([]dto.TaskWithAgentDTO, error) {
	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return s.enrich(tasks)
}

// ListByAgent returns the tasks of one agent with the agent attached
func (s *TaskService) ListByAgent(agentID string) ([]dto.TaskWithAgentDTO, error) {
	tasks, err := s.taskRepo.GetByAgent(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for agent: %w", err)
	}
	return s.enrich(tasks)
}

func (s *TaskService) enrich(tasks []models.Task) ([]dto.TaskWithAgentDTO, error) {
	agents, err := loadAgentDirectory(s.userRepo)
	if err != nil {
		return nil, err
	}

	enriched := make([]dto.TaskWithAgentDTO, len(tasks))
	for i, task := range tasks {
		enriched[i] = dto.ToTaskWithAgentDTO(task, agents.lookup(task.AgentID))
	}
	return enriched, nil
}

// Create stores a new task after checking the completed flag and the agent
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	if !validCompleted(input.Completed) {
		return nil, fieldError("completed", ErrInvalidCompleted.Error())
	}
	if err := ensureAgentExists(s.userRepo, "agentId", input.AgentID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:     input.Title,
		Priority:  input.Priority,
		DueDate:   input.DueDate,
		AgentID:   input.AgentID,
		Completed: input.Completed,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateCompleted sets the completed flag of a task
func (s *TaskService) UpdateCompleted(taskID string, completed int) (*models.Task, error) {
	if !validCompleted(completed) {
		return nil, ErrInvalidCompleted
	}

	task, err := s.taskRepo.UpdateCompleted(taskID, completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return task, nil
}

// SuggestTasks asks the AI backend for follow-up tasks found in free text.
// Suggestions are returned for review and are not stored.
func (s *TaskService) SuggestTasks(ctx context.Context, input SuggestTasksInput) ([]SuggestedTask, error) {
	if s.suggester == nil {
		return nil, ErrAIServiceNotConfigured
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrTextRequired
	}
	if input.AgentID != "" {
		if err := ensureAgentExists(s.userRepo, "agentId", input.AgentID); err != nil {
			return nil, err
		}
	}

	suggestions, err := s.suggester.SuggestTasks(ctx, input.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest tasks: %w", err)
	}

	if len(suggestions) == 0 {
		return nil, ErrAINoTasksGenerated
	}
	if len(suggestions) > constants.MaxSuggestedTasks {
		return nil, fmt.Errorf("AI suggested too many tasks (max %d)", constants.MaxSuggestedTasks)
	}

	valid := make([]SuggestedTask, 0, len(suggestions))
	cutoff := time.Now().Add(-24 * time.Hour)
	for _, suggestion := range suggestions {
		if strings.TrimSpace(suggestion.Title) == "" {
			continue
		}

		if suggestion.DueDate != nil && suggestion.DueDate.Before(cutoff) {
			suggestion.DueDate = nil
		}
		suggestion.Priority = normalizePriority(suggestion.Priority)
		suggestion.AgentID = input.AgentID

		valid = append(valid, suggestion)
	}

	if len(valid) == 0 {
		return nil, ErrAINoValidTasks
	}

	return valid, nil
}

func validCompleted(completed int) bool {
	return completed == models.TaskOpen || completed == models.TaskCompleted
}

func normalizePriority(priority string) string {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "high":
		return "High"
	case "low":
		return "Low"
	default:
		return "Medium"
	}
}
