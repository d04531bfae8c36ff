package models

import "time"

type Transaction struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	PropertyAddress string    `gorm:"not null" json:"propertyAddress"`
	PropertyCity    string    `gorm:"not null" json:"propertyCity"`
	AgentID         string    `gorm:"type:varchar(64);not null;index" json:"agentId"`
	Status          string    `gorm:"type:varchar(50);not null" json:"status"`
	Type            string    `gorm:"type:varchar(50);not null" json:"type"`
	CreatedAt       time.Time `json:"createdAt"`
}
