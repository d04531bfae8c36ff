package dto

import (
	"strings"
	"unicode/utf8"

	"github.com/yukikurage/realty-dashboard-api/internal/models"
)

// AgentDTO represents the agent joined onto forms and tasks
type AgentDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
}

// FormWithAgentDTO represents a form with its resolved agent
type FormWithAgentDTO struct {
	models.Form
	Agent *AgentDTO `json:"agent"`
}

// TaskWithAgentDTO represents a task with its resolved agent
type TaskWithAgentDTO struct {
	models.Task
	Agent *AgentDTO `json:"agent"`
}

// Conversion functions

// Initials returns the first letter of each whitespace-separated word of name,
// keeping the case it was typed in.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}

// ToAgentDTO converts a User model to AgentDTO
func ToAgentDTO(user models.User) AgentDTO {
	return AgentDTO{
		ID:       user.ID,
		Name:     user.Name,
		Initials: Initials(user.Name),
	}
}

// ToFormWithAgentDTO attaches agent to a form. A nil agent serializes as null.
func ToFormWithAgentDTO(form models.Form, agent *AgentDTO) FormWithAgentDTO {
	return FormWithAgentDTO{Form: form, Agent: agent}
}

// ToTaskWithAgentDTO attaches agent to a task. A nil agent serializes as null.
func ToTaskWithAgentDTO(task models.Task, agent *AgentDTO) TaskWithAgentDTO {
	return TaskWithAgentDTO{Task: task, Agent: agent}
}
