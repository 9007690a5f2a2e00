package utils

import (
	"testing"

	"skillport/database"
	courseModels "skillport/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&courseModels.Course{}, &courseModels.CourseAlias{}))
	database.Database = database.DbInstance{Db: db}
}

func TestNormalizeCourseKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"frontend-beginner", "frontend-beginner"},
		{"FRONTEND-BEGINNER", "frontend-beginner"},
		{"FRONTEND_Beginner", "frontend-beginner"},
		{"frontend beginner", "frontend-beginner"},
		{"  Frontend  Beginner ", "frontend-beginner"},
		{"python__basics", "python-basics"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCourseKey(tt.in), "input %q", tt.in)
	}
}

func TestResolveCourseKey(t *testing.T) {
	setupTestDB(t)
	db := database.Database.Db

	course := courseModels.Course{Key: "frontend-beginner", Title: "Frontend for Beginners", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&courseModels.CourseAlias{Alias: "frontend-dev", CourseID: course.ID}).Error)

	// Canonical key, any spelling
	for _, key := range []string{"frontend-beginner", "FRONTEND-BEGINNER", "frontend_beginner"} {
		resolved, err := ResolveCourseKey(key)
		require.NoError(t, err, "key %q", key)
		assert.Equal(t, course.ID, resolved.ID)
	}

	// Alias spellings land on the same record
	for _, key := range []string{"frontend-dev", "FRONTEND_DEV"} {
		resolved, err := ResolveCourseKey(key)
		require.NoError(t, err, "key %q", key)
		assert.Equal(t, course.ID, resolved.ID)
	}

	_, err := ResolveCourseKey("does-not-exist")
	assert.Error(t, err)
}
