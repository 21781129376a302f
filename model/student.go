package model

import (
	"time"

	"gorm.io/gorm"
)

// Student owns its Address (one-to-one) and Assignments (one-to-many); both
// live and die with the student. Courses are an independent many-to-many
// link through the student_courses join table and never cascade.
type Student struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `json:"name"`
	Email     string         `gorm:"index" json:"email"`

	// Relationships
	Address     *Address     `gorm:"foreignKey:StudentID" json:"address,omitempty"`
	Assignments []Assignment `gorm:"foreignKey:StudentID" json:"assignments,omitempty"`
	Courses     []Course     `gorm:"many2many:student_courses" json:"courses,omitempty"`
}

// Address is exclusively owned by one student. A detached address (student
// deleted or address replaced) is removed, never left orphaned.
type Address struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	StudentID uint           `gorm:"not null;index" json:"-"`
	Street    string         `json:"street"`
	ZipCode   string         `gorm:"type:varchar(20)" json:"zip_code"`
	City      string         `json:"city"`
}
