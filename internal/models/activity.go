package models

import "time"

// Activity is a feed entry. RelatedID and AgentID are optional and serialize as null when unset.
type Activity struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Type        string    `gorm:"type:varchar(50);not null" json:"type"`
	RelatedID   *string   `gorm:"type:varchar(64)" json:"relatedId"`
	AgentID     *string   `gorm:"type:varchar(64);index" json:"agentId"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}
