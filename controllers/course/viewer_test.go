package controllers

import (
	"fmt"
	"net/http"
	"testing"

	courseModels "skillport/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPosition(t *testing.T) {
	mods := []navModule{
		{Key: "module-1", LessonCount: 8},
		{Key: "module-2", LessonCount: 2},
	}

	// Within a module
	m, l, ok := nextPosition(mods, 0, 3)
	assert.True(t, ok)
	assert.Equal(t, 0, m)
	assert.Equal(t, 4, l)

	// Crossing the module boundary from the last lesson
	m, l, ok = nextPosition(mods, 0, 7)
	assert.True(t, ok)
	assert.Equal(t, 1, m)
	assert.Equal(t, 0, l)

	// Last lesson of the last module
	_, _, ok = nextPosition(mods, 1, 1)
	assert.False(t, ok)
}

func TestNextPositionSkipsEmptyModules(t *testing.T) {
	mods := []navModule{
		{Key: "module-1", LessonCount: 2},
		{Key: "module-2", LessonCount: 0},
		{Key: "module-3", LessonCount: 3},
	}

	m, l, ok := nextPosition(mods, 0, 1)
	assert.True(t, ok)
	assert.Equal(t, 2, m)
	assert.Equal(t, 0, l)

	// And back again
	m, l, ok = prevPosition(mods, 2, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, m)
	assert.Equal(t, 1, l)
}

func TestPrevPosition(t *testing.T) {
	mods := []navModule{
		{Key: "module-1", LessonCount: 8},
		{Key: "module-2", LessonCount: 2},
	}

	// Within a module
	m, l, ok := prevPosition(mods, 0, 4)
	assert.True(t, ok)
	assert.Equal(t, 0, m)
	assert.Equal(t, 3, l)

	// Stepping back over the boundary lands on the previous module's
	// final lesson
	m, l, ok = prevPosition(mods, 1, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, m)
	assert.Equal(t, 7, l)

	// Very first lesson
	_, _, ok = prevPosition(mods, 0, 0)
	assert.False(t, ok)
}

func TestGetLessonView(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newTestApp(fixture.User.ID)

	resp, body := doRequest(t, app, "GET", "/api/courses/frontend-beginner/modules/module-1/lessons/7")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)

	// No template on the lesson, so the editor gets the default
	assert.Equal(t, defaultLiveCodeTemplate, data["live_code_template"])
	assert.Equal(t, false, data["is_completed"])

	nav := data["navigation"].(map[string]any)
	assert.Equal(t, false, nav["is_next_disabled"])
	assert.Equal(t, false, nav["is_prev_disabled"])

	next := nav["next"].(map[string]any)
	assert.Equal(t, "module-2", next["module_key"])
	assert.Equal(t, float64(0), next["lesson_index"])
}

func TestGetLessonViewBoundaries(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newTestApp(fixture.User.ID)

	// First lesson of the course: prev disabled
	resp, body := doRequest(t, app, "GET", "/api/courses/frontend-beginner/modules/module-1/lessons/0")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	nav := body["data"].(map[string]any)["navigation"].(map[string]any)
	assert.Equal(t, true, nav["is_prev_disabled"])
	assert.Equal(t, false, nav["is_next_disabled"])

	// Last lesson of the course: next disabled
	resp, body = doRequest(t, app, "GET", "/api/courses/frontend-beginner/modules/module-2/lessons/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	nav = body["data"].(map[string]any)["navigation"].(map[string]any)
	assert.Equal(t, false, nav["is_prev_disabled"])
	assert.Equal(t, true, nav["is_next_disabled"])

	prev := nav["prev"].(map[string]any)
	assert.Equal(t, "module-2", prev["module_key"])
	assert.Equal(t, float64(0), prev["lesson_index"])
}

func TestGetLessonViewNotFound(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newTestApp(fixture.User.ID)

	resp, _ := doRequest(t, app, "GET", "/api/courses/frontend-beginner/modules/module-9/lessons/0")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, app, "GET", "/api/courses/frontend-beginner/modules/module-1/lessons/8")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, app, "GET", "/api/courses/no-such-course/modules/module-1/lessons/0")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetLessonViewAliasAccess(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newTestApp(fixture.User.ID)

	// The alias and any case variant resolve to the same course
	for _, key := range []string{"frontend-dev", "FRONTEND-BEGINNER", "frontend_beginner"} {
		resp, _ := doRequest(t, app, "GET", fmt.Sprintf("/api/courses/%s/modules/module-1/lessons/0", key))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "key %q", key)
	}
}

func TestGetLessonViewRequiresEnrollment(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)

	// A second user without any enrollment
	outsider := fixture.User
	outsider.ID = 0
	outsider.Email = "outsider@example.com"
	require.NoError(t, db.Create(&outsider).Error)

	app := newTestApp(outsider.ID)
	resp, _ := doRequest(t, app, "GET", "/api/courses/frontend-beginner/modules/module-1/lessons/0")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetSidebarSearch(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newTestApp(fixture.User.ID)

	// Full tree without a search
	resp, body := doRequest(t, app, "GET", "/api/courses/frontend-beginner/sidebar")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	modules := body["data"].(map[string]any)["modules"].([]any)
	require.Len(t, modules, 2)
	assert.Len(t, modules[0].(map[string]any)["lessons"].([]any), 8)

	// Lesson title search keeps only matching lessons
	resp, body = doRequest(t, app, "GET", "/api/courses/frontend-beginner/sidebar?search=lesson+2.1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	modules = body["data"].(map[string]any)["modules"].([]any)
	require.Len(t, modules, 1)
	mod := modules[0].(map[string]any)
	assert.Equal(t, "module-2", mod["key"])
	assert.Len(t, mod["lessons"].([]any), 1)

	// No match at all
	resp, body = doRequest(t, app, "GET", "/api/courses/frontend-beginner/sidebar?search=zzz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].(map[string]any)["modules"].([]any), 0)
}

func TestGetSidebarProgressIgnoresSearch(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newTestApp(fixture.User.ID)

	// Complete 5 of the 8 lessons in module-1
	var module courseModels.Module
	require.NoError(t, db.Where("course_id = ? AND key = ?", fixture.Course.ID, "module-1").First(&module).Error)
	var lessons []courseModels.Lesson
	require.NoError(t, db.Where("module_id = ?", module.ID).Order("order_index asc").Find(&lessons).Error)
	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&courseModels.LessonCompletion{
			UserID:   fixture.User.ID,
			CourseID: fixture.Course.ID,
			ModuleID: module.ID,
			LessonID: lessons[i].ID,
		}).Error)
	}

	// A search that hides most of the module keeps the module's true
	// completion percentage
	resp, body := doRequest(t, app, "GET", "/api/courses/frontend-beginner/sidebar?search=lesson+1.8")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	modules := body["data"].(map[string]any)["modules"].([]any)
	require.Len(t, modules, 1)
	mod := modules[0].(map[string]any)
	assert.Equal(t, "module-1", mod["key"])
	assert.Len(t, mod["lessons"].([]any), 1)
	assert.Equal(t, float64(63), mod["progress_percent"])
}
