package controllers

import (
	"encoding/json"
	"strconv"

	"skillport/database"
	"skillport/middleware"
	courseModels "skillport/models/course"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateLesson appends a lesson to a module. OrderIndex is
// assigned from the current lesson count so indices stay dense.
func AdminCreateLesson(c *fiber.Ctx) error {
	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("course_id = ? AND key = ? AND is_deleted = ?", course.ID, c.Params("moduleKey"), false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title            string            `json:"title"`
		Duration         string            `json:"duration"`
		VideoURL         string            `json:"videoUrl"`
		Language         string            `json:"language"`
		Body             []map[string]any  `json:"body"`
		SyntaxRefs       []map[string]any  `json:"syntaxRefs"`
		TerminalCommands []string          `json:"terminalCommands"`
		LiveCodeTemplate string            `json:"liveCodeTemplate"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var count int64
	db.Model(&courseModels.Lesson{}).Where("module_id = ? AND is_deleted = ?", module.ID, false).Count(&count)

	language := reqData.Language
	if language == "" {
		language = courseModels.LessonLanguageHTML
	}

	lesson := courseModels.Lesson{
		CourseID:         course.ID,
		ModuleID:         module.ID,
		OrderIndex:       int(count),
		Title:            reqData.Title,
		Duration:         reqData.Duration,
		VideoURL:         reqData.VideoURL,
		Language:         language,
		LiveCodeTemplate: reqData.LiveCodeTemplate,
		IsPublished:      true,
	}
	if reqData.Body != nil {
		raw, _ := json.Marshal(reqData.Body)
		lesson.Body = datatypes.JSON(raw)
	}
	if reqData.SyntaxRefs != nil {
		raw, _ := json.Marshal(reqData.SyntaxRefs)
		lesson.SyntaxRefs = datatypes.JSON(raw)
	}
	if reqData.TerminalCommands != nil {
		raw, _ := json.Marshal(reqData.TerminalCommands)
		lesson.TerminalCommands = datatypes.JSON(raw)
	}

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// AdminUpdateLesson updates a lesson addressed by its module key and
// position.
func AdminUpdateLesson(c *fiber.Ctx) error {
	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("course_id = ? AND key = ? AND is_deleted = ?", course.ID, c.Params("moduleKey"), false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	lessonIdx, err := strconv.Atoi(c.Params("index"))
	if err != nil || lessonIdx < 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson index!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("module_id = ? AND order_index = ? AND is_deleted = ?", module.ID, lessonIdx, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Title            *string          `json:"title"`
		Duration         *string          `json:"duration"`
		VideoURL         *string          `json:"videoUrl"`
		Language         *string          `json:"language"`
		Body             []map[string]any `json:"body"`
		SyntaxRefs       []map[string]any `json:"syntaxRefs"`
		TerminalCommands []string         `json:"terminalCommands"`
		LiveCodeTemplate *string          `json:"liveCodeTemplate"`
		IsPublished      *bool            `json:"isPublished"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != nil {
		lesson.Title = *reqData.Title
	}
	if reqData.Duration != nil {
		lesson.Duration = *reqData.Duration
	}
	if reqData.VideoURL != nil {
		lesson.VideoURL = *reqData.VideoURL
	}
	if reqData.Language != nil {
		lesson.Language = *reqData.Language
	}
	if reqData.Body != nil {
		raw, _ := json.Marshal(reqData.Body)
		lesson.Body = datatypes.JSON(raw)
	}
	if reqData.SyntaxRefs != nil {
		raw, _ := json.Marshal(reqData.SyntaxRefs)
		lesson.SyntaxRefs = datatypes.JSON(raw)
	}
	if reqData.TerminalCommands != nil {
		raw, _ := json.Marshal(reqData.TerminalCommands)
		lesson.TerminalCommands = datatypes.JSON(raw)
	}
	if reqData.LiveCodeTemplate != nil {
		lesson.LiveCodeTemplate = *reqData.LiveCodeTemplate
	}
	if reqData.IsPublished != nil {
		lesson.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// AdminDeleteLesson soft-deletes a lesson and compacts the remaining
// order indices so positions stay dense.
func AdminDeleteLesson(c *fiber.Ctx) error {
	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("course_id = ? AND key = ? AND is_deleted = ?", course.ID, c.Params("moduleKey"), false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	lessonIdx, err := strconv.Atoi(c.Params("index"))
	if err != nil || lessonIdx < 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson index!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("module_id = ? AND order_index = ? AND is_deleted = ?", module.ID, lessonIdx, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	tx := database.Database.Db.Begin()

	lesson.IsDeleted = true
	if err := tx.Save(&lesson).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	var following []courseModels.Lesson
	tx.Where("module_id = ? AND order_index > ? AND is_deleted = ?", module.ID, lessonIdx, false).Order("order_index asc").Find(&following)
	for i := range following {
		following[i].OrderIndex--
		if err := tx.Save(&following[i]).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reindex lessons!", nil)
		}
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
