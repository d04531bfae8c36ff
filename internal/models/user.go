package models

import "time"

// User is a team member. Other entities reference it through AgentID.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Role      string    `gorm:"type:varchar(255);not null" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
