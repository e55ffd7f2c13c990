package models

import "time"

// Category forms a tree via ParentCategoryID. HeroImg and LogoImg hold
// relative paths under the upload root, never absolute filesystem paths.
type Category struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null;index" json:"name"`
	ParentCategoryID *uint     `gorm:"index" json:"parent_category_id"`
	HeroImg          string    `json:"hero_img"`
	LogoImg          string    `json:"logo_img"`
	IsActive         bool      `gorm:"not null" json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
