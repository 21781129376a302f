package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/model"
)

func TestCourseSaveAndFindAllWithoutCache(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db, nil)
	ctx := context.Background()

	jv, err := svc.Save(ctx, &dto.CourseDto{Code: strPtr("JV"), Name: strPtr("Java")})
	require.NoError(t, err)
	assert.NotZero(t, jv.ID)

	_, err = svc.Save(ctx, &dto.CourseDto{Code: strPtr("SB"), Name: strPtr("Spring Boot")})
	require.NoError(t, err)

	catalog, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
}

func TestCourseSaveDuplicateCodeFailsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db, nil)
	ctx := context.Background()

	_, err := svc.Save(ctx, &dto.CourseDto{Code: strPtr("JV"), Name: strPtr("Java")})
	require.NoError(t, err)

	_, err = svc.Save(ctx, &dto.CourseDto{Code: strPtr("JV"), Name: strPtr("Java again")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	var n int64
	require.NoError(t, db.Model(&model.Course{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCourseUpdateToTakenCodeFailsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db, nil)
	ctx := context.Background()

	_, err := svc.Save(ctx, &dto.CourseDto{Code: strPtr("JV"), Name: strPtr("Java")})
	require.NoError(t, err)
	sb, err := svc.Save(ctx, &dto.CourseDto{Code: strPtr("SB"), Name: strPtr("Spring Boot")})
	require.NoError(t, err)

	_, err = svc.UpdateByID(ctx, sb.ID, &dto.CourseDto{Code: strPtr("JV"), Name: strPtr("Spring Boot")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// Updating a course to its own existing code is not a conflict.
	updated, err := svc.UpdateByID(ctx, sb.ID, &dto.CourseDto{Code: strPtr("SB"), Name: strPtr("Spring Boot 3")})
	require.NoError(t, err)
	assert.Equal(t, "Spring Boot 3", updated.Name)
}

func TestCoursePatchChangesOnlyProvidedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db, nil)
	ctx := context.Background()

	course, err := svc.Save(ctx, &dto.CourseDto{Code: strPtr("JS"), Name: strPtr("Java Script")})
	require.NoError(t, err)

	patched, err := svc.PatchByID(ctx, course.ID, &dto.CourseDto{Name: strPtr("JavaScript")})
	require.NoError(t, err)
	assert.Equal(t, "JS", patched.Code)
	assert.Equal(t, "JavaScript", patched.Name)
}

func TestCourseFindAllStudents(t *testing.T) {
	db := newTestDB(t)
	courses := NewCourseService(db, nil)
	enrollment := NewEnrollmentService(db)
	ctx := context.Background()

	course := mustCreateCourse(t, db, "JV", "Java")
	ana := mustCreateStudent(t, db, "Ana", "ana@example.com")
	bob := mustCreateStudent(t, db, "Bob", "bob@example.com")
	mustCreateStudent(t, db, "Eve", "eve@example.com")

	require.NoError(t, enrollment.Enroll(ctx, ana.ID, course.ID))
	require.NoError(t, enrollment.Enroll(ctx, bob.ID, course.ID))

	enrolled, err := courses.FindAllStudents(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, enrolled, 2)

	names := []string{*enrolled[0].Name, *enrolled[1].Name}
	assert.ElementsMatch(t, []string{"Ana", "Bob"}, names)
}

func TestCourseFindAllStudentsMissingCourseFailsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db, nil)

	_, err := svc.FindAllStudents(context.Background(), 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseDeleteClearsJoinRowsButKeepsStudents(t *testing.T) {
	db := newTestDB(t)
	courses := NewCourseService(db, nil)
	enrollment := NewEnrollmentService(db)
	ctx := context.Background()

	course := mustCreateCourse(t, db, "JV", "Java")
	ana := mustCreateStudent(t, db, "Ana", "ana@example.com")
	require.NoError(t, enrollment.Enroll(ctx, ana.ID, course.ID))
	require.EqualValues(t, 1, joinRowCount(t, db))

	require.NoError(t, courses.DeleteByID(ctx, course.ID))

	assert.EqualValues(t, 0, joinRowCount(t, db))

	var students int64
	require.NoError(t, db.Model(&model.Student{}).Count(&students).Error)
	assert.EqualValues(t, 1, students, "enrolled students survive course deletion")
}

func TestCourseDeleteByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db, nil)

	err := svc.DeleteByID(context.Background(), 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
