package studentController

import (
	"bytes"
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
	studentValidator "skillport/validators/student"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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

	app.Get("/api/students/:id", GetStudent)
	app.Put("/api/students/:id/password", studentValidator.ChangePassword(), ChangePassword)
	app.Post("/api/students/:id/submit-module", studentValidator.ModuleSubmission(), SubmitModule)
	app.Get("/api/students/:studentId/module-submissions/:courseKey", GetModuleSubmissions)
	return app
}

func seedStudentCourse(t *testing.T, db *gorm.DB) (models.User, courseModels.Course, courseModels.Module) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("oldpassword1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: "Tania Student", Email: "tania@example.com", Password: string(hashed), Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	course := courseModels.Course{Key: "frontend-beginner", Title: "Frontend for Beginners", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	module := courseModels.Module{CourseID: course.ID, Key: "module-1", Title: "Module 1", OrderIndex: 0}
	require.NoError(t, db.Create(&module).Error)

	enrollment := courseModels.Enrollment{
		UserID:             user.ID,
		CourseID:           course.ID,
		Status:             courseModels.EnrollmentEnrolled,
		ConfirmationStatus: courseModels.ConfirmationConfirmed,
	}
	require.NoError(t, db.Create(&enrollment).Error)

	return user, course, module
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, map[string]any) {
	var reader *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestSubmitModuleAndResubmit(t *testing.T) {
	db := setupTestDB(t)
	user, course, module := seedStudentCourse(t, db)
	app := newTestApp(user.ID)

	path := fmt.Sprintf("/api/students/%d/submit-module", user.ID)

	resp, _ := doJSON(t, app, "POST", path, map[string]any{
		"courseId":      "frontend-beginner",
		"moduleId":      "module-1",
		"submissionUrl": "https://github.com/tania/module-1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Simulate an admin review, then resubmit
	require.NoError(t, db.Model(&models.ModuleSubmission{}).
		Where("user_id = ? AND module_id = ?", user.ID, module.ID).
		Updates(map[string]interface{}{"status": models.SubmissionStatusRejected, "feedback": "Broken link"}).Error)

	resp, _ = doJSON(t, app, "POST", path, map[string]any{
		"courseId":      "frontend-beginner",
		"moduleId":      "module-1",
		"submissionUrl": "https://github.com/tania/module-1-fixed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// One record, updated in place with the status reset
	var submissions []models.ModuleSubmission
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).Find(&submissions).Error)
	require.Len(t, submissions, 1)
	assert.Equal(t, "https://github.com/tania/module-1-fixed", submissions[0].SubmissionURL)
	assert.Equal(t, models.SubmissionStatusSubmitted, submissions[0].Status)
	assert.Empty(t, submissions[0].Feedback)
}

func TestSubmitModuleValidation(t *testing.T) {
	db := setupTestDB(t)
	user, _, _ := seedStudentCourse(t, db)
	app := newTestApp(user.ID)

	resp, body := doJSON(t, app, "POST", fmt.Sprintf("/api/students/%d/submit-module", user.ID), map[string]any{
		"courseId":      "frontend-beginner",
		"moduleId":      "module-1",
		"submissionUrl": "not-a-url",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["data"].(map[string]any), "submissionUrl")
}

func TestGetModuleSubmissions(t *testing.T) {
	db := setupTestDB(t)
	user, course, module := seedStudentCourse(t, db)
	app := newTestApp(user.ID)

	require.NoError(t, db.Create(&models.ModuleSubmission{
		UserID:        user.ID,
		CourseID:      course.ID,
		ModuleID:      module.ID,
		SubmissionURL: "https://github.com/tania/module-1",
		Status:        models.SubmissionStatusSubmitted,
	}).Error)

	resp, body := doJSON(t, app, "GET", fmt.Sprintf("/api/students/%d/module-submissions/FRONTEND-BEGINNER", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	submissions := body["data"].(map[string]any)["submissions"].([]any)
	require.Len(t, submissions, 1)
	entry := submissions[0].(map[string]any)
	assert.Equal(t, "module-1", entry["module_key"])
	assert.Equal(t, "https://github.com/tania/module-1", entry["submission_url"])
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	user, _, _ := seedStudentCourse(t, db)
	app := newTestApp(user.ID)

	path := fmt.Sprintf("/api/students/%d/password", user.ID)

	// Confirmation mismatch never reaches the controller
	resp, body := doJSON(t, app, "PUT", path, map[string]any{
		"currentPassword": "oldpassword1",
		"newPassword":     "newpassword1",
		"confirmPassword": "different1",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["data"].(map[string]any), "confirmPassword")

	// Wrong current password
	resp, _ = doJSON(t, app, "PUT", path, map[string]any{
		"currentPassword": "wrongpassword",
		"newPassword":     "newpassword1",
		"confirmPassword": "newpassword1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Success
	resp, _ = doJSON(t, app, "PUT", path, map[string]any{
		"currentPassword": "oldpassword1",
		"newPassword":     "newpassword1",
		"confirmPassword": "newpassword1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword1")))
}
