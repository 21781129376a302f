package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marinescu97/classroom-api/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Student{},
		&model.Address{},
		&model.Assignment{},
		&model.Course{},
		&model.CronJobLog{},
	))
	return db
}

func mustCreateStudent(t *testing.T, db *gorm.DB, name, email string) *model.Student {
	t.Helper()
	s := &model.Student{Name: name, Email: email}
	require.NoError(t, db.Create(s).Error)
	return s
}

func mustCreateCourse(t *testing.T, db *gorm.DB, code, name string) *model.Course {
	t.Helper()
	c := &model.Course{Code: code, Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func joinRowCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table("student_courses").Count(&n).Error)
	return n
}

func strPtr(s string) *string { return &s }
