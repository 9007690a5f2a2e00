package controllers

import (
	"fmt"
	"net/http"
	"testing"

	courseModels "skillport/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteLesson(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newTestApp(fixture.User.ID)

	resp, _ := doRequest(t, app, "POST", "/api/courses/frontend-beginner/modules/module-1/lessons/0/complete")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Completing the same lesson twice is rejected
	resp, _ = doRequest(t, app, "POST", "/api/courses/frontend-beginner/modules/module-1/lessons/0/complete")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The viewer reflects the completion
	resp, body := doRequest(t, app, "GET", "/api/courses/frontend-beginner/modules/module-1/lessons/0")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["data"].(map[string]any)["is_completed"])
}

func TestCompleteLessonUpdatesEnrollment(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newTestApp(fixture.User.ID)

	// 5 of the course's 10 lessons
	for i := 0; i < 5; i++ {
		resp, _ := doRequest(t, app, "POST",
			fmt.Sprintf("/api/courses/frontend-beginner/modules/module-1/lessons/%d/complete", i))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", fixture.User.ID, fixture.Course.ID).First(&enrollment).Error)
	assert.Equal(t, 5, enrollment.CompletedLessons)
	assert.Equal(t, 10, enrollment.TotalLessons)
	assert.InDelta(t, 50.0, enrollment.Progress, 0.01)
	assert.Equal(t, courseModels.EnrollmentInProgress, enrollment.Status)
}

func TestCourseCompletion(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newTestApp(fixture.User.ID)

	paths := []string{}
	for i := 0; i < 8; i++ {
		paths = append(paths, fmt.Sprintf("/api/courses/frontend-beginner/modules/module-1/lessons/%d/complete", i))
	}
	paths = append(paths,
		"/api/courses/frontend-beginner/modules/module-2/lessons/0/complete",
		"/api/courses/frontend-beginner/modules/module-2/lessons/1/complete",
	)
	for _, path := range paths {
		resp, _ := doRequest(t, app, "POST", path)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", fixture.User.ID, fixture.Course.ID).First(&enrollment).Error)
	assert.Equal(t, courseModels.EnrollmentCompleted, enrollment.Status)
	assert.NotNil(t, enrollment.CompletedAt)
	assert.InDelta(t, 100.0, enrollment.Progress, 0.01)
}

func TestGetCourseProgress(t *testing.T) {
	db := setupTestDB(t)
	fixture := seedViewerCourse(t, db)
	app := newTestApp(fixture.User.ID)

	// Complete 2 of 8 in module-1, none in module-2
	for _, path := range []string{
		"/api/courses/frontend-beginner/modules/module-1/lessons/0/complete",
		"/api/courses/frontend-beginner/modules/module-1/lessons/1/complete",
	} {
		resp, _ := doRequest(t, app, "POST", path)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := doRequest(t, app, "GET", "/api/courses/frontend-beginner/progress")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	progress := body["data"].(map[string]any)["module_progress"].([]any)
	require.Len(t, progress, 2)

	first := progress[0].(map[string]any)
	assert.Equal(t, "module-1", first["module_key"])
	assert.Equal(t, float64(2), first["completed_lessons"])
	assert.Equal(t, float64(8), first["total_lessons"])
	assert.Equal(t, float64(25), first["progress_percent"])

	second := progress[1].(map[string]any)
	assert.Equal(t, "module-2", second["module_key"])
	assert.Equal(t, float64(0), second["progress_percent"])
}
