package controllers

import (
	"strconv"
	"strings"

	"skillport/database"
	"skillport/middleware"
	"skillport/models"
	courseModels "skillport/models/course"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
)

// defaultLiveCodeTemplate is loaded into the live-code editor when a
// lesson ships no template of its own.
const defaultLiveCodeTemplate = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: sans-serif; padding: 16px; }
  </style>
</head>
<body>
  <h1>Hello, Skillport!</h1>
  <p>Edit this code and press Run.</p>
</body>
</html>`

// navModule is one module's slot in the course's navigation order.
type navModule struct {
	Key         string
	LessonCount int
}

// nextPosition advances (moduleIdx, lessonIdx) by one lesson, crossing
// into the next module after the current module's last lesson. ok is
// false at the last lesson of the last module.
func nextPosition(mods []navModule, moduleIdx, lessonIdx int) (int, int, bool) {
	if moduleIdx < 0 || moduleIdx >= len(mods) {
		return 0, 0, false
	}
	if lessonIdx < mods[moduleIdx].LessonCount-1 {
		return moduleIdx, lessonIdx + 1, true
	}
	for m := moduleIdx + 1; m < len(mods); m++ {
		if mods[m].LessonCount > 0 {
			return m, 0, true
		}
	}
	return 0, 0, false
}

// prevPosition is the exact mirror of nextPosition, landing on the
// previous module's final lesson when stepping back from index 0.
func prevPosition(mods []navModule, moduleIdx, lessonIdx int) (int, int, bool) {
	if moduleIdx < 0 || moduleIdx >= len(mods) {
		return 0, 0, false
	}
	if lessonIdx > 0 {
		return moduleIdx, lessonIdx - 1, true
	}
	for m := moduleIdx - 1; m >= 0; m-- {
		if mods[m].LessonCount > 0 {
			return m, mods[m].LessonCount - 1, true
		}
	}
	return 0, 0, false
}

// loadCourseNav returns the course's modules in catalog order together
// with their published lesson counts.
func loadCourseNav(courseID uint) ([]navModule, []courseModels.Module) {
	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules)

	nav := make([]navModule, len(modules))
	for i, mod := range modules {
		var count int64
		database.Database.Db.Model(&courseModels.Lesson{}).Where("module_id = ? AND is_deleted = ? AND is_published = ?", mod.ID, false, true).Count(&count)
		nav[i] = navModule{Key: mod.Key, LessonCount: int(count)}
	}
	return nav, modules
}

// hasConfirmedAccess reports whether the user holds a confirmed
// enrollment for the course.
func hasConfirmedAccess(userID, courseID uint) bool {
	var enrollment courseModels.Enrollment
	err := database.Database.Db.Where("user_id = ? AND course_id = ? AND confirmation_status = ? AND is_deleted = ?",
		userID, courseID, courseModels.ConfirmationConfirmed, false).First(&enrollment).Error
	return err == nil
}

// GetLessonView resolves the active lesson for the viewer: lesson body,
// syntax references, live-code template and the prev/next navigation
// state in one payload, so tab switches need no further requests.
func GetLessonView(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil || !course.IsPublished {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !hasConfirmedAccess(userID, course.ID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	moduleKey := c.Params("moduleKey")
	lessonIdx, err := strconv.Atoi(c.Params("index"))
	if err != nil || lessonIdx < 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson index!", nil)
	}

	nav, modules := loadCourseNav(course.ID)

	moduleIdx := -1
	for i, mod := range modules {
		if mod.Key == moduleKey {
			moduleIdx = i
			break
		}
	}
	if moduleIdx == -1 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}
	if lessonIdx >= nav[moduleIdx].LessonCount {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("module_id = ? AND order_index = ? AND is_deleted = ? AND is_published = ?",
		modules[moduleIdx].ID, lessonIdx, false, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	liveCode := lesson.LiveCodeTemplate
	if liveCode == "" {
		liveCode = defaultLiveCodeTemplate
	}

	type position struct {
		ModuleKey   string `json:"module_key"`
		LessonIndex int    `json:"lesson_index"`
	}
	var next, prev *position
	if m, i, ok := nextPosition(nav, moduleIdx, lessonIdx); ok {
		next = &position{ModuleKey: nav[m].Key, LessonIndex: i}
	}
	if m, i, ok := prevPosition(nav, moduleIdx, lessonIdx); ok {
		prev = &position{ModuleKey: nav[m].Key, LessonIndex: i}
	}

	// Completion state for the active lesson
	var completion courseModels.LessonCompletion
	isCompleted := database.Database.Db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lesson.ID, false).First(&completion).Error == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"module":             modules[moduleIdx],
		"lesson":             lesson,
		"live_code_template": liveCode,
		"is_completed":       isCompleted,
		"navigation": fiber.Map{
			"prev":             prev,
			"next":             next,
			"is_next_disabled": next == nil,
			"is_prev_disabled": prev == nil,
		},
	})
}

// GetSidebar returns the module/lesson tree with per-module completion
// percentages and per-lesson completed flags. An optional search query
// filters modules and lessons by case-insensitive title substring.
func GetSidebar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil || !course.IsPublished {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !hasConfirmedAccess(userID, course.ID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).Order("order_index asc").Find(&modules)

	// Completed lesson ids for this user/course
	var completions []courseModels.LessonCompletion
	database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).Find(&completions)
	completedIDs := make(map[uint]bool, len(completions))
	for _, cc := range completions {
		completedIDs[cc.LessonID] = true
	}

	type SidebarLesson struct {
		Index       int    `json:"index"`
		Title       string `json:"title"`
		Duration    string `json:"duration,omitempty"`
		IsCompleted bool   `json:"is_completed"`
	}
	type SidebarModule struct {
		Key             string          `json:"key"`
		Title           string          `json:"title"`
		Duration        string          `json:"duration,omitempty"`
		ProgressPercent int             `json:"progress_percent"`
		Lessons         []SidebarLesson `json:"lessons"`
	}

	result := make([]SidebarModule, 0, len(modules))
	for _, mod := range modules {
		var lessons []courseModels.Lesson
		database.Database.Db.Where("module_id = ? AND is_deleted = ? AND is_published = ?", mod.ID, false, true).
			Order("order_index asc").Find(&lessons)

		completed := int64(0)
		items := make([]SidebarLesson, 0, len(lessons))
		moduleMatches := search == "" || strings.Contains(strings.ToLower(mod.Title), search)
		for _, lesson := range lessons {
			if completedIDs[lesson.ID] {
				completed++
			}
			if moduleMatches || strings.Contains(strings.ToLower(lesson.Title), search) {
				items = append(items, SidebarLesson{
					Index:       lesson.OrderIndex,
					Title:       lesson.Title,
					Duration:    lesson.Duration,
					IsCompleted: completedIDs[lesson.ID],
				})
			}
		}

		// Progress counts the whole module even when the search hides lessons
		percent := utils.RoundPercent(completed, int64(len(lessons)))

		if search != "" && !moduleMatches && len(items) == 0 {
			continue
		}

		result = append(result, SidebarModule{
			Key:             mod.Key,
			Title:           mod.Title,
			Duration:        mod.Duration,
			ProgressPercent: percent,
			Lessons:         items,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sidebar fetched successfully!", fiber.Map{
		"course":  course.Key,
		"modules": result,
	})
}
