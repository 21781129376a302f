package dto

import "time"

// AssignmentDto carries assignment fields over the wire. The owning student
// comes from the URL, never from the body.
type AssignmentDto struct {
	Title   *string    `json:"title" validate:"omitempty,max=255"`
	DueDate *time.Time `json:"due_date" validate:"omitempty"`
}
