package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	courseModels "skillport/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReorderApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	})

	app.Put("/admin/courses/:key/modules/reorder", AdminReorderModules)
	return app
}

func moduleOrder(t *testing.T, db *gorm.DB, courseID uint) []string {
	var modules []courseModels.Module
	require.NoError(t, db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&modules).Error)

	keys := make([]string, 0, len(modules))
	for _, m := range modules {
		keys = append(keys, m.Key)
	}
	return keys
}

func postReorder(t *testing.T, app *fiber.App, keys []string) *http.Response {
	raw, err := json.Marshal(map[string]any{"moduleKeys": keys})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/admin/courses/frontend-beginner/modules/reorder", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAdminReorderModules(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newReorderApp(fixture.User.ID)

	resp := postReorder(t, app, []string{"module-2", "module-1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"module-2", "module-1"}, moduleOrder(t, db, fixture.Course.ID))
}

func TestAdminReorderModulesRejectsDuplicateKeys(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newReorderApp(fixture.User.ID)

	// Right length, but one module repeated and one omitted
	resp := postReorder(t, app, []string{"module-1", "module-1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"module-1", "module-2"}, moduleOrder(t, db, fixture.Course.ID))
}

func TestAdminReorderModulesRejectsIncompleteList(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newReorderApp(fixture.User.ID)

	resp := postReorder(t, app, []string{"module-1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postReorder(t, app, []string{"module-1", "module-9"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"module-1", "module-2"}, moduleOrder(t, db, fixture.Course.ID))
}
