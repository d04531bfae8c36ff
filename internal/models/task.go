package models

import "time"

// Completed flag values. The flag is stored as an integer, not a boolean.
const (
	TaskOpen      = 0
	TaskCompleted = 1
)

type Task struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Priority  string    `gorm:"type:varchar(20);not null" json:"priority"`
	DueDate   time.Time `gorm:"not null" json:"dueDate"`
	AgentID   string    `gorm:"type:varchar(64);not null;index" json:"agentId"`
	Completed int       `gorm:"not null;default:0" json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}
