package models

import "time"

// Heartbeat is one stored heart-rate sample for a child
type Heartbeat struct {
	BaseModel
	ChildName  string    `gorm:"type:varchar(100);not null;index:idx_child_family" json:"childName"`
	FamilyCode string    `gorm:"type:varchar(20);not null;index:idx_child_family" json:"familyCode"`
	Heartbeat  int       `gorm:"not null" json:"heartbeat"`
	Timestamp  time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}
