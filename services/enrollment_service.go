package services

import (
	"context"
	"errors"

	"github.com/marinescu97/classroom-api/model"
	"gorm.io/gorm"
)

// EnrollmentService owns the many-to-many link between students and courses.
// Every operation resolves both sides, applies the membership change to both,
// and persists both inside one transaction, so the link is either fully
// created/removed or not at all.
type EnrollmentService struct {
	db *gorm.DB
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

func (s *EnrollmentService) findStudent(tx *gorm.DB, id uint) (*model.Student, error) {
	var student model.Student
	if err := tx.Preload("Courses").First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("student not found with id %d", id)
		}
		return nil, err
	}
	return &student, nil
}

func (s *EnrollmentService) findCourse(tx *gorm.DB, id uint) (*model.Course, error) {
	var course model.Course
	if err := tx.Preload("Students").First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("course not found with id %d", id)
		}
		return nil, err
	}
	return &course, nil
}

// Enroll links a student to a course. The membership delta on the two loaded
// sides is the only duplicate signal: when the course is already in the
// student's set the link exists, and the call fails with ErrConflict before
// any write happens.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := s.findStudent(tx, studentID)
		if err != nil {
			return err
		}
		course, err := s.findCourse(tx, courseID)
		if err != nil {
			return err
		}

		if !addCourse(student, course) || !addStudent(course, student) {
			return conflictf("course already exists for this student")
		}
		return s.saveStudentAndCourse(tx, student, course)
	})
}

// Unenroll removes the link between a student and a course. A no-op removal
// on either side means the link did not exist and the call fails NotFound.
func (s *EnrollmentService) Unenroll(ctx context.Context, studentID, courseID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.findCourse(tx, courseID)
		if err != nil {
			return err
		}
		student, err := s.findStudent(tx, studentID)
		if err != nil {
			return err
		}

		if !removeCourse(student, course) || !removeStudent(course, student) {
			return notFoundf("this course doesn't contain student with id %d", studentID)
		}
		return s.saveStudentAndCourse(tx, student, course)
	})
}

// saveStudentAndCourse persists both directions of the association, so the
// join rows are durable regardless of which side the storage tier considers
// authoritative.
func (s *EnrollmentService) saveStudentAndCourse(tx *gorm.DB, student *model.Student, course *model.Course) error {
	if err := tx.Model(student).Association("Courses").Replace(&student.Courses); err != nil {
		return err
	}
	return tx.Model(course).Association("Students").Replace(&course.Students)
}

// addCourse adds the course to the student's set, reporting whether it was
// actually absent. The stored copy carries no back-references; relationships
// stay id-based.
func addCourse(student *model.Student, course *model.Course) bool {
	for i := range student.Courses {
		if student.Courses[i].ID == course.ID {
			return false
		}
	}
	c := *course
	c.Students = nil
	student.Courses = append(student.Courses, c)
	return true
}

// addStudent is the mirror of addCourse on the course side.
func addStudent(course *model.Course, student *model.Student) bool {
	for i := range course.Students {
		if course.Students[i].ID == student.ID {
			return false
		}
	}
	st := *student
	st.Courses = nil
	st.Assignments = nil
	st.Address = nil
	course.Students = append(course.Students, st)
	return true
}

// removeCourse removes the course from the student's set, reporting whether
// it was actually present.
func removeCourse(student *model.Student, course *model.Course) bool {
	for i := range student.Courses {
		if student.Courses[i].ID == course.ID {
			student.Courses = append(student.Courses[:i], student.Courses[i+1:]...)
			return true
		}
	}
	return false
}

// removeStudent is the mirror of removeCourse on the course side.
func removeStudent(course *model.Course, student *model.Student) bool {
	for i := range course.Students {
		if course.Students[i].ID == student.ID {
			course.Students = append(course.Students[:i], course.Students[i+1:]...)
			return true
		}
	}
	return false
}
