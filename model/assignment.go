package model

import (
	"time"

	"gorm.io/gorm"
)

// Assignment cannot exist without its owning student.
type Assignment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	StudentID uint           `gorm:"not null;index" json:"student_id"`
	Title     string         `gorm:"not null" json:"title"`
	DueDate   *time.Time     `gorm:"type:date" json:"due_date,omitempty"`
}
