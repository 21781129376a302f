package mapper

import (
	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/model"
)

// CourseToEntity builds a new course from the DTO.
func CourseToEntity(d *dto.CourseDto) *model.Course {
	return &model.Course{
		Code: deref(d.Code),
		Name: deref(d.Name),
	}
}

// CourseToDto maps a course back to its transfer object.
func CourseToDto(c *model.Course) dto.CourseDto {
	return dto.CourseDto{
		Code: &c.Code,
		Name: &c.Name,
	}
}

// UpdateCourseFromDto applies full-update semantics.
func UpdateCourseFromDto(d *dto.CourseDto, c *model.Course) {
	c.Code = deref(d.Code)
	c.Name = deref(d.Name)
}

// PatchCourseFromDto applies partial-patch semantics.
func PatchCourseFromDto(d *dto.CourseDto, c *model.Course) {
	if d.Code != nil {
		c.Code = *d.Code
	}
	if d.Name != nil {
		c.Name = *d.Name
	}
}
