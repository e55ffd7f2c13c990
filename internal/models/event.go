package models

import "time"

type Event struct {
	ID                    uint        `gorm:"primaryKey" json:"id"`
	Title                 string      `gorm:"not null" json:"title"`
	CategoryID            uint        `gorm:"index" json:"category_id"`
	StartDateTime         time.Time   `json:"start_date_time"`
	EndDateTime           time.Time   `json:"end_date_time"`
	IsOnline              bool        `json:"is_online"`
	IsPaid                bool        `json:"is_paid"`
	Location              string      `json:"location"`
	Address               string      `json:"address"`
	City                  string      `json:"city"`
	State                 string      `json:"state"`
	Country               string      `json:"country"`
	ZipCode               string      `json:"zip_code"`
	AdditionalInformation string      `json:"additional_information"`
	RulesRegulations      string      `json:"rules_regulations"`
	UploadedAt            time.Time   `json:"uploaded_at"`
	Files                 []EventFile `gorm:"foreignKey:EventID" json:"files,omitempty"`
}
