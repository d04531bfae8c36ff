package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/realty-dashboard-api/internal/dto"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrFormNotFound           = errors.New("form not found")
	ErrTaskNotFound           = errors.New("task not found")
	ErrStatusRequired         = errors.New("status is required")
	ErrInvalidCompleted       = errors.New("completed must be 0 or 1")
	ErrUsernameTaken          = errors.New("username already exists")
	ErrPasswordTooShort       = errors.New("password too short")
	ErrFailedToHashPassword   = errors.New("failed to hash password")
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoTasksGenerated     = errors.New("AI did not suggest any tasks")
	ErrAINoValidTasks         = errors.New("no valid tasks could be built from AI output")
	ErrTextRequired           = errors.New("text is required")
)

// ValidationError reports input fields rejected by a service before anything is stored.
type ValidationError struct {
	Fields []dto.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: []dto.FieldError{{Field: field, Message: message}}}
}
