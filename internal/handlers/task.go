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

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns tasks with their agent, filtered by agentId when given
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var (
		tasks []dto.TaskWithAgentDTO
		err   error
	)
	if agentID := c.Query("agentId"); agentID != "" {
		tasks, err = h.taskService.ListByAgent(agentID)
	} else {
		tasks, err = h.taskService.List()
	}
	if err != nil {
		log.Printf("Failed to list tasks: %v", err)
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req struct {
		Title     string     `json:"title" binding:"required"`
		Priority  string     `json:"priority" binding:"required"`
		DueDate   *time.Time `json:"dueDate" binding:"required"`
		AgentID   string     `json:"agentId" binding:"required"`
		Completed *int       `json:"completed" binding:"omitempty,oneof=0 1"`
	}
	if !bindJSON(c, &req) {
		return
	}

	input := services.CreateTaskInput{
		Title:    req.Title,
		Priority: req.Priority,
		DueDate:  *req.DueDate,
		AgentID:  req.AgentID,
	}
	if req.Completed != nil {
		input.Completed = *req.Completed
	}

	task, err := h.taskService.Create(input)
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		log.Printf("Failed to create task: %v", err)
		apierrors.InternalError(c, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTaskStatus sets the completed flag of a task. The flag is checked
// before the task is looked up.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	var req struct {
		Completed *int `json:"completed"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if req.Completed == nil {
		apierrors.MissingField(c, "Completed status is required")
		return
	}

	task, err := h.taskService.UpdateCompleted(c.Param("id"), *req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCompleted):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		default:
			log.Printf("Failed to update task status: %v", err)
			apierrors.InternalError(c, "Failed to update task status")
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// SuggestTasks extracts follow-up tasks from pasted notes using AI.
// Nothing is stored; the client creates the tasks it keeps.
func (h *TaskHandler) SuggestTasks(c *gin.Context) {
	var req struct {
		Text    string `json:"text" binding:"required"`
		AgentID string `json:"agentId"`
	}
	if !bindJSON(c, &req) {
		return
	}

	tasks, err := h.taskService.SuggestTasks(c.Request.Context(), services.SuggestTasksInput{
		Text:    req.Text,
		AgentID: req.AgentID,
	})
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		switch {
		case errors.Is(err, services.ErrAIServiceNotConfigured):
			apierrors.ServiceUnavailable(c, "AI service is not configured")
		case errors.Is(err, services.ErrTextRequired):
			apierrors.BadRequest(c, "Text is required")
		case errors.Is(err, services.ErrAINoTasksGenerated),
			errors.Is(err, services.ErrAINoValidTasks):
			c.JSON(http.StatusOK, gin.H{"tasks": []services.SuggestedTask{}})
		default:
			log.Printf("Failed to suggest tasks: %v", err)
			apierrors.InternalError(c, "Failed to suggest tasks")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}
