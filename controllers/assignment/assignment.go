package assignmentController

import (
	"fmt"
	"log"

	"skillport/database"
	"skillport/middleware"
	"skillport/models"
	courseModels "skillport/models/course"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCourseAssignments lists the assignments of a course in order.
func GetCourseAssignments(c *fiber.Ctx) error {
	course, err := utils.ResolveCourseKey(c.Params("courseKey"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var assignments []courseModels.Assignment
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", fiber.Map{
		"course_key":  course.Key,
		"assignments": assignments,
	})
}

// GetCourseProjects lists the capstone projects of a course.
func GetCourseProjects(c *fiber.Ctx) error {
	course, err := utils.ResolveCourseKey(c.Params("courseKey"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var projects []courseModels.Project
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").Find(&projects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch projects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully!", fiber.Map{
		"course_key": course.Key,
		"projects":   projects,
	})
}

// CompleteAssignment marks one assignment done for the signed-in
// student.
func CompleteAssignment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	assignmentID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assignment id!", nil)
	}

	db := database.Database.Db

	var assignment courseModels.Assignment
	if err := db.Where("id = ? AND is_deleted = ?", assignmentID, false).First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND confirmation_status = ? AND is_deleted = ?",
		userID, assignment.CourseID, courseModels.ConfirmationConfirmed, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var existing courseModels.AssignmentCompletion
	if err := db.Where("user_id = ? AND assignment_id = ? AND is_deleted = ?", userID, assignment.ID, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assignment already completed!", nil)
	}

	completion := courseModels.AssignmentCompletion{
		UserID:       userID,
		AssignmentID: assignment.ID,
		CourseID:     assignment.CourseID,
		Status:       courseModels.AssignmentCompleted,
	}
	if err := db.Create(&completion).Error; err != nil {
		log.Printf("Error saving assignment completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment completed!", fiber.Map{
		"assignment_id": assignment.ID,
		"status":        completion.Status,
	})
}

// GetProgressSummary returns the portal's per-course summary card: an
// assignment status map plus completed/total counts.
func GetProgressSummary(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var caller models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&caller).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	if caller.ID != uint(targetID) && caller.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot access this student!", nil)
	}

	course, err := utils.ResolveCourseKey(c.Params("courseKey"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	db := database.Database.Db

	var assignments []courseModels.Assignment
	if err := db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress summary!", nil)
	}

	var completions []courseModels.AssignmentCompletion
	db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", targetID, course.ID, false).Find(&completions)

	completedSet := make(map[uint]string, len(completions))
	for _, comp := range completions {
		completedSet[comp.AssignmentID] = comp.Status
	}

	statuses := make(map[string]string, len(assignments))
	completedCount := 0
	for _, a := range assignments {
		key := fmt.Sprintf("assignment-%d", a.OrderIndex+1)
		if status, ok := completedSet[a.ID]; ok {
			statuses[key] = status
			if status == courseModels.AssignmentCompleted {
				completedCount++
			}
		} else {
			statuses[key] = courseModels.AssignmentPending
		}
	}

	var enrollment courseModels.Enrollment
	lessonProgress := 0.0
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", targetID, course.ID, false).
		First(&enrollment).Error; err == nil {
		lessonProgress = enrollment.Progress
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress summary fetched successfully!", fiber.Map{
		"course_key":          course.Key,
		"assignment_statuses": statuses,
		"completed_count":     completedCount,
		"total_count":         len(assignments),
		"lesson_progress":     lessonProgress,
	})
}
