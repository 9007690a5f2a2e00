package assignmentController

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
	"github.com/stretchr/testify/assert"
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

func newTestApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	})

	app.Get("/api/assignments/:courseKey", GetCourseAssignments)
	app.Post("/api/assignments/:id/complete", CompleteAssignment)
	app.Get("/api/progress/student/:id/course/:courseKey/summary", GetProgressSummary)
	return app
}

type assignmentFixture struct {
	User        models.User
	Course      courseModels.Course
	Assignments []courseModels.Assignment
}

func seedAssignments(t *testing.T, db *gorm.DB) assignmentFixture {
	user := models.User{Name: "Rafi Student", Email: "rafi@example.com", Password: "hash", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	course := courseModels.Course{Key: "frontend-beginner", Title: "Frontend for Beginners", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	module := courseModels.Module{CourseID: course.ID, Key: "module-1", Title: "Module 1", OrderIndex: 0}
	require.NoError(t, db.Create(&module).Error)

	var assignments []courseModels.Assignment
	for i := 0; i < 3; i++ {
		a := courseModels.Assignment{
			CourseID:   course.ID,
			ModuleID:   module.ID,
			Title:      fmt.Sprintf("Assignment %d", i+1),
			OrderIndex: i,
		}
		require.NoError(t, db.Create(&a).Error)
		assignments = append(assignments, a)
	}

	require.NoError(t, db.Create(&courseModels.Enrollment{
		UserID:             user.ID,
		CourseID:           course.ID,
		Status:             courseModels.EnrollmentInProgress,
		ConfirmationStatus: courseModels.ConfirmationConfirmed,
		Progress:           40,
	}).Error)

	return assignmentFixture{User: user, Course: course, Assignments: assignments}
}

func doRequest(t *testing.T, app *fiber.App, method, path string) (*http.Response, map[string]any) {
	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestGetCourseAssignments(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedAssignments(t, db)
	app := newTestApp(fixture.User.ID)

	resp, body := doRequest(t, app, "GET", "/api/assignments/frontend-beginner")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assignments := body["data"].(map[string]any)["assignments"].([]any)
	require.Len(t, assignments, 3)
	assert.Equal(t, "Assignment 1", assignments[0].(map[string]any)["title"])
}

func TestCompleteAssignment(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedAssignments(t, db)
	app := newTestApp(fixture.User.ID)

	path := fmt.Sprintf("/api/assignments/%d/complete", fixture.Assignments[0].ID)

	resp, _ := doRequest(t, app, "POST", path)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", path)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCompleteAssignmentRequiresEnrollment(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedAssignments(t, db)

	outsider := models.User{Name: "Outsider", Email: "outsider@example.com", Password: "hash", Role: models.RoleStudent}
	require.NoError(t, db.Create(&outsider).Error)
	app := newTestApp(outsider.ID)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/api/assignments/%d/complete", fixture.Assignments[0].ID))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetProgressSummary(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedAssignments(t, db)
	app := newTestApp(fixture.User.ID)

	require.NoError(t, db.Create(&courseModels.AssignmentCompletion{
		UserID:       fixture.User.ID,
		AssignmentID: fixture.Assignments[1].ID,
		CourseID:     fixture.Course.ID,
		Status:       courseModels.AssignmentCompleted,
	}).Error)

	resp, body := doRequest(t, app, "GET",
		fmt.Sprintf("/api/progress/student/%d/course/frontend-beginner/summary", fixture.User.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	statuses := data["assignment_statuses"].(map[string]any)
	assert.Equal(t, courseModels.AssignmentPending, statuses["assignment-1"])
	assert.Equal(t, courseModels.AssignmentCompleted, statuses["assignment-2"])
	assert.Equal(t, courseModels.AssignmentPending, statuses["assignment-3"])
	assert.Equal(t, float64(1), data["completed_count"])
	assert.Equal(t, float64(3), data["total_count"])
	assert.Equal(t, float64(40), data["lesson_progress"])
}

func TestGetProgressSummarySelfOnly(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedAssignments(t, db)

	other := models.User{Name: "Other", Email: "other@example.com", Password: "hash", Role: models.RoleStudent}
	require.NoError(t, db.Create(&other).Error)

	path := fmt.Sprintf("/api/progress/student/%d/course/frontend-beginner/summary", fixture.User.ID)

	resp, _ := doRequest(t, newTestApp(other.ID), "GET", path)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	admin := models.User{Name: "Admin", Email: "admin@example.com", Password: "hash", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	resp, _ = doRequest(t, newTestApp(admin.ID), "GET", path)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
