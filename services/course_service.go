package services

import (
	"context"
	"errors"
	"time"

	"github.com/marinescu97/classroom-api/dto"
	"github.com/marinescu97/classroom-api/mapper"
	"github.com/marinescu97/classroom-api/model"
	"github.com/marinescu97/classroom-api/utils/cache"
	"gorm.io/gorm"
)

const (
	courseCatalogKey = "courses:catalog"
	courseCatalogTTL = 5 * time.Minute
)

// CourseService handles course CRUD. The catalog is read far more often than
// it changes, so FindAll is served through Redis when a cache is configured;
// every write invalidates it.
type CourseService struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewCourseService creates a new course service. The cache may be nil, in
// which case all reads go straight to the database.
func NewCourseService(db *gorm.DB, c *cache.RedisCache) *CourseService {
	return &CourseService{db: db, cache: c}
}

// FindByID returns the course or fails NotFound.
func (s *CourseService) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := s.db.WithContext(ctx).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("course not found with id %d", id)
		}
		return nil, err
	}
	return &course, nil
}

// FindAll returns the course catalog as DTOs.
func (s *CourseService) FindAll(ctx context.Context) ([]dto.CourseDto, error) {
	if s.cache != nil {
		var cached []dto.CourseDto
		if err := s.cache.GetJSON(ctx, courseCatalogKey, &cached); err == nil {
			return cached, nil
		}
	}

	var courses []model.Course
	if err := s.db.WithContext(ctx).Find(&courses).Error; err != nil {
		return nil, err
	}

	catalog := make([]dto.CourseDto, 0, len(courses))
	for i := range courses {
		catalog = append(catalog, mapper.CourseToDto(&courses[i]))
	}

	if s.cache != nil {
		// Best effort; a failed cache write must not fail the read.
		_ = s.cache.SetJSON(ctx, courseCatalogKey, catalog, courseCatalogTTL)
	}
	return catalog, nil
}

// FindAllStudents returns the students enrolled in the course.
func (s *CourseService) FindAllStudents(ctx context.Context, courseID uint) ([]dto.StudentDto, error) {
	var course model.Course
	err := s.db.WithContext(ctx).
		Preload("Students").
		Preload("Students.Address").
		First(&course, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("course not found with id %d", courseID)
		}
		return nil, err
	}

	students := make([]dto.StudentDto, 0, len(course.Students))
	for i := range course.Students {
		students = append(students, mapper.StudentToDto(&course.Students[i]))
	}
	return students, nil
}

// Save creates a new course. Course codes are unique across the catalog.
func (s *CourseService) Save(ctx context.Context, d *dto.CourseDto) (*model.Course, error) {
	course := mapper.CourseToEntity(d)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkCodeFree(tx, course.Code, 0); err != nil {
			return err
		}
		return tx.Create(course).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	return course, nil
}

// UpdateByID applies full-update semantics.
func (s *CourseService) UpdateByID(ctx context.Context, id uint, d *dto.CourseDto) (*model.Course, error) {
	return s.merge(ctx, id, d, mapper.UpdateCourseFromDto)
}

// PatchByID applies partial-patch semantics.
func (s *CourseService) PatchByID(ctx context.Context, id uint, d *dto.CourseDto) (*model.Course, error) {
	return s.merge(ctx, id, d, mapper.PatchCourseFromDto)
}

func (s *CourseService) merge(ctx context.Context, id uint, d *dto.CourseDto, apply func(*dto.CourseDto, *model.Course)) (*model.Course, error) {
	var merged *model.Course
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course model.Course
		if err := tx.First(&course, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("course not found with id %d", id)
			}
			return err
		}

		apply(d, &course)

		if err := s.checkCodeFree(tx, course.Code, course.ID); err != nil {
			return err
		}
		if err := tx.Save(&course).Error; err != nil {
			return err
		}
		merged = &course
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	return merged, nil
}

// DeleteByID removes the course and its join rows only: enrolled students
// are never deleted through the many-to-many link.
func (s *CourseService) DeleteByID(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course model.Course
		if err := tx.First(&course, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("course not found with id %d", id)
			}
			return err
		}

		if err := tx.Model(&course).Association("Students").Clear(); err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		return err
	}

	s.invalidateCatalog(ctx)
	return nil
}

func (s *CourseService) checkCodeFree(tx *gorm.DB, code string, selfID uint) error {
	var count int64
	if err := tx.Model(&model.Course{}).
		Where("code = ? AND id <> ?", code, selfID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return conflictf("course with code %q already exists", code)
	}
	return nil
}

func (s *CourseService) invalidateCatalog(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, courseCatalogKey)
	}
}
