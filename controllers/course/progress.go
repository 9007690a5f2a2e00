package controllers

import (
	"strconv"

	"skillport/database"
	"skillport/middleware"
	"skillport/models"
	courseModels "skillport/models/course"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
)

// CompleteLesson records the explicit lesson-completion event for the
// signed-in user and refreshes the enrollment's aggregate progress.
func CompleteLesson(c *fiber.Ctx) error {
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

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND confirmation_status = ? AND is_deleted = ?",
		userID, course.ID, courseModels.ConfirmationConfirmed, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
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
	if err := database.Database.Db.Where("module_id = ? AND order_index = ? AND is_deleted = ? AND is_published = ?",
		module.ID, lessonIdx, false, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	// Check if lesson is already marked as completed
	var existing courseModels.LessonCompletion
	if err := database.Database.Db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lesson.ID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson already marked as completed!", nil)
	}

	completion := courseModels.LessonCompletion{
		UserID:   userID,
		CourseID: course.ID,
		ModuleID: module.ID,
		LessonID: lesson.ID,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&completion).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson as completed!", nil)
	}
	tx.Commit()

	updateEnrollmentProgress(userID, course.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed successfully!", completion)
}

// GetCourseProgress gets the user's progress in a course, broken down
// by module the way the sidebar displays it.
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).Order("order_index asc").Find(&modules)

	type ModuleProgress struct {
		ModuleKey        string `json:"module_key"`
		ModuleName       string `json:"module_name"`
		TotalLessons     int64  `json:"total_lessons"`
		CompletedLessons int64  `json:"completed_lessons"`
		ProgressPercent  int    `json:"progress_percent"`
	}

	moduleProgress := make([]ModuleProgress, len(modules))
	for i, mod := range modules {
		var totalLessons int64
		var completedLessons int64

		database.Database.Db.Model(&courseModels.Lesson{}).Where("module_id = ? AND is_deleted = ? AND is_published = ?", mod.ID, false, true).Count(&totalLessons)
		database.Database.Db.Model(&courseModels.LessonCompletion{}).Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, mod.ID, false).Count(&completedLessons)

		moduleProgress[i] = ModuleProgress{
			ModuleKey:        mod.Key,
			ModuleName:       mod.Title,
			TotalLessons:     totalLessons,
			CompletedLessons: completedLessons,
			ProgressPercent:  utils.RoundPercent(completedLessons, totalLessons),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":      enrollment,
		"module_progress": moduleProgress,
	})
}

// updateEnrollmentProgress updates the enrollment progress after a
// lesson completion
func updateEnrollmentProgress(userID uint, courseID uint) {
	var totalLessons int64
	var completedLessons int64

	database.Database.Db.Model(&courseModels.Lesson{}).Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).Count(&totalLessons)
	database.Database.Db.Model(&courseModels.LessonCompletion{}).Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Count(&completedLessons)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return
	}

	enrollment.CompletedLessons = int(completedLessons)
	enrollment.TotalLessons = int(totalLessons)

	if totalLessons > 0 {
		enrollment.Progress = float64(completedLessons) / float64(totalLessons) * 100
	}

	if enrollment.Progress >= 100 {
		enrollment.Status = courseModels.EnrollmentCompleted
		now := enrollment.UpdatedAt
		enrollment.CompletedAt = &now
	} else if enrollment.Progress > 0 {
		enrollment.Status = courseModels.EnrollmentInProgress
	}

	database.Database.Db.Save(&enrollment)
}
