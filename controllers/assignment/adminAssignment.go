package assignmentController

import (
	"encoding/json"
	"log"

	"skillport/database"
	"skillport/middleware"
	"skillport/models"
	courseModels "skillport/models/course"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateAssignment attaches an assignment to a course, optionally
// scoped to one of its modules.
func AdminCreateAssignment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssignment").(*struct {
		CourseKey string `json:"courseId"`
		ModuleKey string `json:"moduleId"`
		Title     string `json:"title"`
		Brief     string `json:"brief"`
		DueDay    int    `json:"dueDay"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := utils.ResolveCourseKey(reqData.CourseKey)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	db := database.Database.Db

	var moduleID uint
	if reqData.ModuleKey != "" {
		var module courseModels.Module
		if err := db.Where("course_id = ? AND key = ? AND is_deleted = ?", course.ID, reqData.ModuleKey, false).First(&module).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		moduleID = module.ID
	}

	var count int64
	db.Model(&courseModels.Assignment{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&count)

	assignment := courseModels.Assignment{
		CourseID:   course.ID,
		ModuleID:   moduleID,
		Title:      reqData.Title,
		Brief:      reqData.Brief,
		DueDay:     reqData.DueDay,
		OrderIndex: int(count),
	}
	if err := db.Create(&assignment).Error; err != nil {
		log.Printf("Error creating assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created.", fiber.Map{
		"assignment": assignment,
	})
}

// AdminCreateProject attaches a capstone project to a course.
func AdminCreateProject(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProject").(*struct {
		CourseKey    string   `json:"courseId"`
		Title        string   `json:"title"`
		Brief        string   `json:"brief"`
		Requirements []string `json:"requirements"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := utils.ResolveCourseKey(reqData.CourseKey)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	db := database.Database.Db

	var count int64
	db.Model(&courseModels.Project{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&count)

	var requirements datatypes.JSON
	if len(reqData.Requirements) > 0 {
		raw, _ := json.Marshal(reqData.Requirements)
		requirements = datatypes.JSON(raw)
	}

	project := courseModels.Project{
		CourseID:     course.ID,
		Title:        reqData.Title,
		Brief:        reqData.Brief,
		Requirements: requirements,
		OrderIndex:   int(count),
	}
	if err := db.Create(&project).Error; err != nil {
		log.Printf("Error creating project: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project created.", fiber.Map{
		"project": project,
	})
}

// AdminReviewSubmission sets the review status and feedback on a
// student's module submission.
func AdminReviewSubmission(c *fiber.Ctx) error {
	submissionID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission id!", nil)
	}

	reqData, ok := c.Locals("validatedSubmissionReview").(*struct {
		Status   string `json:"status"`
		Feedback string `json:"feedback"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var submission models.ModuleSubmission
	if err := db.Where("id = ? AND is_deleted = ?", submissionID, false).First(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	if err := db.Model(&submission).Updates(map[string]interface{}{
		"status":   reqData.Status,
		"feedback": reqData.Feedback,
	}).Error; err != nil {
		log.Printf("Error reviewing submission: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission reviewed.", fiber.Map{
		"submission": submission,
	})
}
