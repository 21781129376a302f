package services

import (
	"context"
	"errors"

	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/mapper"
	"github.com/marinescu97/classroom-api/model"
	"gorm.io/gorm"
)

// AssignmentService handles assignment CRUD. Assignments are always created
// in batches under an existing student and cannot change owner afterwards.
type AssignmentService struct {
	db *gorm.DB
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

// FindAll returns all assignments.
func (s *AssignmentService) FindAll(ctx context.Context) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := s.db.WithContext(ctx).Find(&assignments).Error
	return assignments, err
}

// FindByID returns the assignment or fails NotFound.
func (s *AssignmentService) FindByID(ctx context.Context, id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := s.db.WithContext(ctx).First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("assignment not found with id %d", id)
		}
		return nil, err
	}
	return &assignment, nil
}

// FindAllByStudentID returns the assignments owned by the student. An
// unknown student simply yields an empty list.
func (s *AssignmentService) FindAllByStudentID(ctx context.Context, studentID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := s.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Find(&assignments).Error
	return assignments, err
}

// SaveAll validates the student once, then creates one assignment per DTO,
// all owned by that student, in a single transaction.
func (s *AssignmentService) SaveAll(ctx context.Context, studentID uint, dtos []dto.AssignmentDto) ([]model.Assignment, error) {
	assignments := make([]model.Assignment, 0, len(dtos))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireStudent(tx, studentID); err != nil {
			return err
		}

		for i := range dtos {
			assignments = append(assignments, mapper.AssignmentToEntity(&dtos[i], studentID))
		}
		if len(assignments) == 0 {
			return nil
		}
		return tx.Create(&assignments).Error
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// UpdateAssignment applies full-update semantics and persists the result.
func (s *AssignmentService) UpdateAssignment(ctx context.Context, id uint, d *dto.AssignmentDto) (*model.Assignment, error) {
	assignment, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mapper.UpdateAssignmentFromDto(d, assignment)
	if err := s.db.WithContext(ctx).Save(assignment).Error; err != nil {
		return nil, err
	}
	return assignment, nil
}

// PatchAssignment applies partial-patch semantics and persists the result.
func (s *AssignmentService) PatchAssignment(ctx context.Context, id uint, d *dto.AssignmentDto) (*model.Assignment, error) {
	assignment, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mapper.PatchAssignmentFromDto(d, assignment)
	if err := s.db.WithContext(ctx).Save(assignment).Error; err != nil {
		return nil, err
	}
	return assignment, nil
}

// DeleteByID removes one assignment, failing NotFound when the id is absent.
func (s *AssignmentService) DeleteByID(ctx context.Context, id uint) error {
	assignment, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(assignment).Error
}

// DeleteAllByStudentID validates the student exists, then bulk-removes all
// of its assignments.
func (s *AssignmentService) DeleteAllByStudentID(ctx context.Context, studentID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireStudent(tx, studentID); err != nil {
			return err
		}
		return tx.Where("student_id = ?", studentID).Delete(&model.Assignment{}).Error
	})
}

func requireStudent(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&model.Student{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFoundf("student not found with id %d", id)
	}
	return nil
}
