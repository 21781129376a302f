package model

import (
	"time"

	"gorm.io/gorm"
)

// Course holds the inverse side of the student many-to-many link. Deleting a
// course removes only its join rows, never the students.
type Course struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Code      string         `gorm:"uniqueIndex;not null" json:"code"`
	Name      string         `gorm:"not null" json:"name"`

	// Relationships
	Students []Student `gorm:"many2many:student_courses" json:"-"`
}
