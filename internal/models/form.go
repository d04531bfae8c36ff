package models

import "time"

// Form statuses counted as pending on the dashboard.
const (
	FormStatusPendingReview = "Pending Review"
	FormStatusOverdue       = "Overdue"
	FormStatusCompleted     = "Completed"
)

type Form struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Type            string    `gorm:"type:varchar(100);not null" json:"type"`
	PropertyAddress string    `gorm:"not null" json:"propertyAddress"`
	PropertyCity    string    `gorm:"not null" json:"propertyCity"`
	AgentID         string    `gorm:"type:varchar(64);not null;index" json:"agentId"`
	Status          string    `gorm:"type:varchar(50);not null" json:"status"`
	DueDate         time.Time `gorm:"not null" json:"dueDate"`
	CreatedAt       time.Time `json:"createdAt"`
}
