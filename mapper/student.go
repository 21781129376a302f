package mapper

import (
	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/model"
)

// StudentToEntity builds a new student, including its owned address when the
// DTO carries one.
func StudentToEntity(d *dto.StudentDto) *model.Student {
	student := &model.Student{}
	UpdateStudentFromDto(d, student)
	return student
}

// StudentToDto maps a student back to its transfer object. Courses and
// assignments are not part of the student DTO.
func StudentToDto(s *model.Student) dto.StudentDto {
	return dto.StudentDto{
		Name:    &s.Name,
		Email:   &s.Email,
		Address: AddressToDto(s.Address),
	}
}

// UpdateStudentFromDto applies full-update semantics: every mapped field is
// overwritten. A nil address DTO detaches the owned address; a present one
// merges into the existing row so its identity is kept.
func UpdateStudentFromDto(d *dto.StudentDto, s *model.Student) {
	s.Name = deref(d.Name)
	s.Email = deref(d.Email)

	if d.Address == nil {
		s.Address = nil
		return
	}
	if s.Address == nil {
		s.Address = &model.Address{StudentID: s.ID}
	}
	UpdateAddressFromDto(d.Address, s.Address)
}

// PatchStudentFromDto applies partial-patch semantics: nil DTO fields leave
// the target untouched. The nested address follows the same discipline one
// level deep.
func PatchStudentFromDto(d *dto.StudentDto, s *model.Student) {
	if d.Name != nil {
		s.Name = *d.Name
	}
	if d.Email != nil {
		s.Email = *d.Email
	}
	if d.Address != nil {
		if s.Address == nil {
			s.Address = &model.Address{StudentID: s.ID}
		}
		PatchAddressFromDto(d.Address, s.Address)
	}
}
