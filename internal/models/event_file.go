package models

import "time"

// EventFile is one uploaded image attached to an event. Filename is the
// generated stored name, Path the relative path under the upload root.
// Files are auto-approved on write; no moderation workflow runs.
type EventFile struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EventID    uint      `gorm:"not null;index" json:"event_id"`
	Filename   string    `gorm:"not null;uniqueIndex" json:"filename"`
	Type       string    `gorm:"not null" json:"type"`
	Path       string    `gorm:"not null" json:"path"`
	CreatedAt  time.Time `json:"created_at"`
	IsApproved bool      `gorm:"not null" json:"is_approved"`
}

func (EventFile) TableName() string {
	return "event_files"
}
