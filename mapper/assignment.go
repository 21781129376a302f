package mapper

import (
	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/model"
)

// AssignmentToEntity builds a new assignment owned by the given student.
func AssignmentToEntity(d *dto.AssignmentDto, studentID uint) model.Assignment {
	return model.Assignment{
		StudentID: studentID,
		Title:     deref(d.Title),
		DueDate:   d.DueDate,
	}
}

// UpdateAssignmentFromDto applies full-update semantics. A nil due date in
// the DTO clears the stored one.
func UpdateAssignmentFromDto(d *dto.AssignmentDto, a *model.Assignment) {
	a.Title = deref(d.Title)
	a.DueDate = d.DueDate
}

// PatchAssignmentFromDto applies partial-patch semantics.
func PatchAssignmentFromDto(d *dto.AssignmentDto, a *model.Assignment) {
	if d.Title != nil {
		a.Title = *d.Title
	}
	if d.DueDate != nil {
		a.DueDate = d.DueDate
	}
}
