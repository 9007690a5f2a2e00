package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skillport/config"
	"skillport/database"
	"skillport/models"
	courseModels "skillport/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

// newTestApp registers the viewer routes with the given user already
// authenticated.
func newTestApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	})

	app.Get("/api/courses/:key/sidebar", GetSidebar)
	app.Get("/api/courses/:key/modules/:moduleKey/lessons/:index", GetLessonView)
	app.Post("/api/courses/:key/modules/:moduleKey/lessons/:index/complete", CompleteLesson)
	app.Get("/api/courses/:key/progress", GetCourseProgress)
	return app
}

type testFixture struct {
	User   models.User
	Course courseModels.Course
}

// seedViewerCourse creates a student with a confirmed enrollment in a
// two-module course: module-1 has 8 lessons, module-2 has 2.
func seedViewerCourse(t *testing.T, db *gorm.DB) testFixture {
	user := models.User{Name: "Asha Student", Email: "asha@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	course := courseModels.Course{Key: "frontend-beginner", Title: "Frontend for Beginners", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&courseModels.CourseAlias{Alias: "frontend-dev", CourseID: course.ID}).Error)

	lessonCounts := []int{8, 2}
	for m, count := range lessonCounts {
		module := courseModels.Module{
			CourseID:   course.ID,
			Key:        fmt.Sprintf("module-%d", m+1),
			Title:      fmt.Sprintf("Module %d", m+1),
			OrderIndex: m,
		}
		require.NoError(t, db.Create(&module).Error)

		for l := 0; l < count; l++ {
			lesson := courseModels.Lesson{
				CourseID:    course.ID,
				ModuleID:    module.ID,
				OrderIndex:  l,
				Title:       fmt.Sprintf("Lesson %d.%d", m+1, l+1),
				Language:    courseModels.LessonLanguageHTML,
				IsPublished: true,
			}
			require.NoError(t, db.Create(&lesson).Error)
		}
	}

	enrollment := courseModels.Enrollment{
		UserID:             user.ID,
		CourseID:           course.ID,
		Status:             courseModels.EnrollmentEnrolled,
		ConfirmationStatus: courseModels.ConfirmationConfirmed,
		PaymentStatus:      models.PaymentStatusConfirmed,
	}
	require.NoError(t, db.Create(&enrollment).Error)

	return testFixture{User: user, Course: course}
}

func doRequest(t *testing.T, app *fiber.App, method, path string) (*http.Response, map[string]any) {
	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}
