package enrollmentController

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

	app.Get("/api/courses/purchased/:email", GetPurchasedCourses)
	app.Get("/api/courses/:key/access", CheckCourseAccess)
	return app
}

func seedEnrollment(t *testing.T, db *gorm.DB, confirmation string) (models.User, courseModels.Course) {
	user := models.User{Name: "Nabil Student", Email: "nabil@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	course := courseModels.Course{
		Key:         "frontend-beginner",
		Title:       "Frontend for Beginners",
		PriceAmount: 5000,
		ViewerRoute: "/courses/frontend-beginner",
		IsPublished: true,
	}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&courseModels.CourseAlias{Alias: "frontend-dev", CourseID: course.ID}).Error)

	enrollment := courseModels.Enrollment{
		UserID:             user.ID,
		CourseID:           course.ID,
		Status:             courseModels.EnrollmentEnrolled,
		ConfirmationStatus: confirmation,
	}
	require.NoError(t, db.Create(&enrollment).Error)

	return user, course
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]any) {
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestIsCourseAccessibleAliasEquivalence(t *testing.T) {
	db := setupTestDB(t)
	user, course := seedEnrollment(t, db, courseModels.ConfirmationConfirmed)

	// Every known spelling resolves against the one enrollment row
	for _, key := range []string{"frontend-beginner", "FRONTEND-BEGINNER", "frontend_beginner", "frontend-dev", "FRONTEND_DEV"} {
		accessible, resolved := IsCourseAccessible(user.ID, key)
		assert.True(t, accessible, "key %q", key)
		require.NotNil(t, resolved)
		assert.Equal(t, course.ID, resolved.ID)
	}

	accessible, _ := IsCourseAccessible(user.ID, "no-such-course")
	assert.False(t, accessible)
}

func TestCheckCourseAccessConfirmed(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedEnrollment(t, db, courseModels.ConfirmationConfirmed)
	app := newTestApp(user.ID)

	resp, body := getJSON(t, app, "/api/courses/FRONTEND-BEGINNER/access")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["accessible"])
	assert.Equal(t, "frontend-beginner", data["course_key"])
	assert.Equal(t, "/courses/frontend-beginner", data["route"])
}

func TestCheckCourseAccessPending(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedEnrollment(t, db, courseModels.ConfirmationPending)
	app := newTestApp(user.ID)

	resp, body := getJSON(t, app, "/api/courses/frontend-beginner/access")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, false, data["accessible"])
	assert.Contains(t, data["reason"], "being verified")
}

func TestCheckCourseAccessRejected(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedEnrollment(t, db, courseModels.ConfirmationRejected)
	app := newTestApp(user.ID)

	resp, body := getJSON(t, app, "/api/courses/frontend-beginner/access")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, false, data["accessible"])
	assert.Contains(t, data["reason"], "could not be verified")
}

func TestGetPurchasedCourses(t *testing.T) {
	db := setupTestDB(t)
	user, course := seedEnrollment(t, db, courseModels.ConfirmationConfirmed)
	app := newTestApp(user.ID)

	resp, body := getJSON(t, app, "/api/courses/purchased/nabil@example.com")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	courses := body["data"].(map[string]any)["courses"].([]any)
	require.Len(t, courses, 1)
	entry := courses[0].(map[string]any)
	assert.Equal(t, course.Key, entry["course_key"])
	assert.Equal(t, course.Title, entry["course_name"])
	assert.Equal(t, float64(5000), entry["price_amount"])
}

func TestGetPurchasedCoursesSelfOnly(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollment(t, db, courseModels.ConfirmationConfirmed)

	other := models.User{Name: "Other Student", Email: "other@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&other).Error)

	// A student cannot read another student's dashboard
	app := newTestApp(other.ID)
	resp, _ := getJSON(t, app, "/api/courses/purchased/nabil@example.com")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admins can
	admin := models.User{Name: "Admin", Email: "admin@example.com", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)
	app = newTestApp(admin.ID)
	resp, _ = getJSON(t, app, "/api/courses/purchased/nabil@example.com")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
