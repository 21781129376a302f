package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/model"
)

func strPtr(s string) *string { return &s }

func TestUpdateStudentOverwritesEveryField(t *testing.T) {
	student := &model.Student{Name: "Ana", Email: "ana@example.com"}

	UpdateStudentFromDto(&dto.StudentDto{Name: strPtr("Ana Maria")}, student)

	assert.Equal(t, "Ana Maria", student.Name)
	assert.Empty(t, student.Email, "absent fields overwrite with the zero value")
}

func TestUpdateStudentDetachesAddressWhenDtoHasNone(t *testing.T) {
	student := &model.Student{
		Name:    "Ana",
		Address: &model.Address{Street: "Main St 1", City: "Cluj"},
	}

	UpdateStudentFromDto(&dto.StudentDto{Name: strPtr("Ana")}, student)

	assert.Nil(t, student.Address)
}

func TestUpdateStudentMergesAddressKeepingRowIdentity(t *testing.T) {
	student := &model.Student{
		Name: "Ana",
		Address: &model.Address{
			ID:     7,
			Street: "Main St 1",
			City:   "Cluj",
		},
	}

	UpdateStudentFromDto(&dto.StudentDto{
		Name:    strPtr("Ana"),
		Address: &dto.AddressDto{Street: strPtr("Side St 2")},
	}, student)

	require.NotNil(t, student.Address)
	assert.EqualValues(t, 7, student.Address.ID)
	assert.Equal(t, "Side St 2", student.Address.Street)
	assert.Empty(t, student.Address.City, "full update overwrites nested fields too")
}

func TestPatchStudentSkipsNilFields(t *testing.T) {
	student := &model.Student{
		Name:    "Ana",
		Email:   "ana@example.com",
		Address: &model.Address{ID: 7, Street: "Main St 1", City: "Cluj"},
	}

	PatchStudentFromDto(&dto.StudentDto{Email: strPtr("ana.m@example.com")}, student)

	assert.Equal(t, "Ana", student.Name)
	assert.Equal(t, "ana.m@example.com", student.Email)
	require.NotNil(t, student.Address, "patch never detaches the address")
	assert.Equal(t, "Main St 1", student.Address.Street)
}

func TestPatchStudentNestedAddressIsPatchedOneLevelDeep(t *testing.T) {
	student := &model.Student{
		Name:    "Ana",
		Address: &model.Address{ID: 7, Street: "Main St 1", City: "Cluj"},
	}

	PatchStudentFromDto(&dto.StudentDto{
		Address: &dto.AddressDto{City: strPtr("Bucharest")},
	}, student)

	require.NotNil(t, student.Address)
	assert.EqualValues(t, 7, student.Address.ID)
	assert.Equal(t, "Main St 1", student.Address.Street, "nil nested fields stay put")
	assert.Equal(t, "Bucharest", student.Address.City)
}

func TestPatchStudentCreatesAddressWhenMissing(t *testing.T) {
	student := &model.Student{ID: 3, Name: "Ana"}

	PatchStudentFromDto(&dto.StudentDto{
		Address: &dto.AddressDto{Street: strPtr("Main St 1")},
	}, student)

	require.NotNil(t, student.Address)
	assert.EqualValues(t, 3, student.Address.StudentID)
	assert.Equal(t, "Main St 1", student.Address.Street)
}

func TestAssignmentUpdateClearsDueDateWhilePatchKeepsIt(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	assignment := model.Assignment{Title: "Homework", DueDate: &due}

	patched := assignment
	PatchAssignmentFromDto(&dto.AssignmentDto{Title: strPtr("Homework v2")}, &patched)
	assert.Equal(t, "Homework v2", patched.Title)
	assert.NotNil(t, patched.DueDate)

	updated := assignment
	UpdateAssignmentFromDto(&dto.AssignmentDto{Title: strPtr("Homework v3")}, &updated)
	assert.Equal(t, "Homework v3", updated.Title)
	assert.Nil(t, updated.DueDate)
}
