package services

import (
	"context"
	"errors"

	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/mapper"
	"github.com/marinescu97/classroom-api/model"
	"gorm.io/gorm"
)

// StudentService handles student CRUD and the ownership cascades for the
// student's address and assignments. The course links are removed on delete
// but the courses themselves are never touched.
type StudentService struct {
	db *gorm.DB
}

// NewStudentService creates a new student service
func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

// Save maps the DTO to a new student and persists it together with its owned
// address, if any. The returned student carries its assigned id.
func (s *StudentService) Save(ctx context.Context, d *dto.StudentDto) (*model.Student, error) {
	student := mapper.StudentToEntity(d)
	if err := s.db.WithContext(ctx).Create(student).Error; err != nil {
		return nil, err
	}
	return student, nil
}

// FindAll returns all students with their owned relations loaded.
func (s *StudentService) FindAll(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := s.db.WithContext(ctx).
		Preload("Address").
		Preload("Assignments").
		Preload("Courses").
		Find(&students).Error
	return students, err
}

// FindByID returns the student or fails NotFound.
func (s *StudentService) FindByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	err := s.db.WithContext(ctx).
		Preload("Address").
		Preload("Assignments").
		Preload("Courses").
		First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("student not found with id %d", id)
		}
		return nil, err
	}
	return &student, nil
}

// FindAllCourses returns the courses the student is enrolled in.
func (s *StudentService) FindAllCourses(ctx context.Context, studentID uint) ([]dto.CourseDto, error) {
	student, err := s.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	courses := make([]dto.CourseDto, 0, len(student.Courses))
	for i := range student.Courses {
		courses = append(courses, mapper.CourseToDto(&student.Courses[i]))
	}
	return courses, nil
}

// UpdateByID applies full-update semantics. Detaching or replacing the owned
// address deletes the orphaned row in the same transaction.
func (s *StudentService) UpdateByID(ctx context.Context, id uint, d *dto.StudentDto) (*model.Student, error) {
	var updated *model.Student
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := s.findForUpdate(tx, id)
		if err != nil {
			return err
		}

		prev := student.Address
		mapper.UpdateStudentFromDto(d, student)

		if student.Address == nil && prev != nil {
			if err := tx.Delete(prev).Error; err != nil {
				return err
			}
		}
		if err := saveWithAddress(tx, student); err != nil {
			return err
		}
		updated = student
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// PatchByID applies partial-patch semantics: only fields present in the DTO
// change. A patch never detaches the address.
func (s *StudentService) PatchByID(ctx context.Context, id uint, d *dto.StudentDto) (*model.Student, error) {
	var patched *model.Student
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := s.findForUpdate(tx, id)
		if err != nil {
			return err
		}

		mapper.PatchStudentFromDto(d, student)

		if err := saveWithAddress(tx, student); err != nil {
			return err
		}
		patched = student
		return nil
	})
	if err != nil {
		return nil, err
	}
	return patched, nil
}

// DeleteByID removes the student and cascades over its owned relations:
// assignments and address are deleted, course links are cleared. The courses
// themselves survive.
func (s *StudentService) DeleteByID(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := s.findForUpdate(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Where("student_id = ?", id).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).Delete(&model.Address{}).Error; err != nil {
			return err
		}
		if err := tx.Model(student).Association("Courses").Clear(); err != nil {
			return err
		}
		return tx.Delete(student).Error
	})
}

func (s *StudentService) findForUpdate(tx *gorm.DB, id uint) (*model.Student, error) {
	var student model.Student
	if err := tx.Preload("Address").First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("student not found with id %d", id)
		}
		return nil, err
	}
	return &student, nil
}

// saveWithAddress persists the student and its (possibly new or modified)
// owned address in place.
func saveWithAddress(tx *gorm.DB, student *model.Student) error {
	return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(student).Error
}
