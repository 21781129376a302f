package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/model"
)

func TestSaveAllCreatesOneAssignmentPerDto(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssignmentService(db)
	ctx := context.Background()

	student := mustCreateStudent(t, db, "Ana", "ana@example.com")
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	created, err := svc.SaveAll(ctx, student.ID, []dto.AssignmentDto{
		{Title: strPtr("Homework 1"), DueDate: &due},
		{Title: strPtr("Homework 2")},
		{Title: strPtr("Homework 3")},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	seen := map[uint]bool{}
	for _, a := range created {
		assert.NotZero(t, a.ID)
		assert.False(t, seen[a.ID], "ids must be fresh and distinct")
		seen[a.ID] = true
		assert.Equal(t, student.ID, a.StudentID)
	}
}

func TestSaveAllMissingStudentFailsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssignmentService(db)

	_, err := svc.SaveAll(context.Background(), 77, []dto.AssignmentDto{
		{Title: strPtr("Homework 1")},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var n int64
	require.NoError(t, db.Model(&model.Assignment{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestDeleteAllByStudentIDRemovesOnlyThatStudents(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssignmentService(db)
	ctx := context.Background()

	ana := mustCreateStudent(t, db, "Ana", "ana@example.com")
	bob := mustCreateStudent(t, db, "Bob", "bob@example.com")

	_, err := svc.SaveAll(ctx, ana.ID, []dto.AssignmentDto{{Title: strPtr("A1")}, {Title: strPtr("A2")}})
	require.NoError(t, err)
	_, err = svc.SaveAll(ctx, bob.ID, []dto.AssignmentDto{{Title: strPtr("B1")}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAllByStudentID(ctx, ana.ID))

	remaining, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, bob.ID, remaining[0].StudentID)
}

func TestDeleteAllByStudentIDMissingStudent(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssignmentService(db)

	err := svc.DeleteAllByStudentID(context.Background(), 77)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateClearsDueDateWhilePatchKeepsIt(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssignmentService(db)
	ctx := context.Background()

	student := mustCreateStudent(t, db, "Ana", "ana@example.com")
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	created, err := svc.SaveAll(ctx, student.ID, []dto.AssignmentDto{
		{Title: strPtr("Homework"), DueDate: &due},
	})
	require.NoError(t, err)
	id := created[0].ID

	// Patch without a due date leaves the stored one alone.
	patched, err := svc.PatchAssignment(ctx, id, &dto.AssignmentDto{Title: strPtr("Homework v2")})
	require.NoError(t, err)
	assert.Equal(t, "Homework v2", patched.Title)
	require.NotNil(t, patched.DueDate)

	// Full update without a due date clears it.
	updated, err := svc.UpdateAssignment(ctx, id, &dto.AssignmentDto{Title: strPtr("Homework v3")})
	require.NoError(t, err)
	assert.Equal(t, "Homework v3", updated.Title)
	assert.Nil(t, updated.DueDate)
}

func TestAssignmentDeleteByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssignmentService(db)

	err := svc.DeleteByID(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindAllByStudentIDUnknownStudentYieldsEmptyList(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssignmentService(db)

	assignments, err := svc.FindAllByStudentID(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}
