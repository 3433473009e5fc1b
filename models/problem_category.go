package models

import "time"

// ProblemCategory represents the problem_categories reference table.
type ProblemCategory struct {
	ID          int       `gorm:"primaryKey;column:id" json:"id"`
	Category    string    `gorm:"column:category;size:50;index" json:"category"`
	Description string    `gorm:"column:description;size:255" json:"description"`
	Active      bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName override
func (ProblemCategory) TableName() string {
	return "problem_categories"
}
