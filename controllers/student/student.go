package studentController

import (
	"log"

	"skillport/config"
	"skillport/database"
	"skillport/middleware"
	"skillport/models"
	courseModels "skillport/models/course"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// requireSelfOrAdmin loads the target student when the caller is that
// student or an admin, otherwise returns nil.
func requireSelfOrAdmin(c *fiber.Ctx, targetID uint) *models.User {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil
	}

	var caller models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&caller).Error; err != nil {
		return nil
	}
	if caller.ID != targetID && caller.Role != models.RoleAdmin {
		return nil
	}

	var target models.User
	if caller.ID == targetID {
		target = caller
	} else if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&target).Error; err != nil {
		return nil
	}
	return &target
}

// GetStudent returns a student profile. Students see only their own.
func GetStudent(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	student := requireSelfOrAdmin(c, uint(targetID))
	if student == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot access this student!", nil)
	}

	var enrollmentCount int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND confirmation_status = ? AND is_deleted = ?",
			student.ID, courseModels.ConfirmationConfirmed, false).Count(&enrollmentCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student fetched successfully!", fiber.Map{
		"student": fiber.Map{
			"id":               student.ID,
			"name":             student.Name,
			"email":            student.Email,
			"mobile":           student.Mobile,
			"role":             student.Role,
			"enrolled_courses": enrollmentCount,
			"created_at":       student.CreatedAt,
		},
	})
}

// UpdateStudent lets a student update their own profile fields.
func UpdateStudent(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	student := requireSelfOrAdmin(c, uint(targetID))
	if student == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot access this student!", nil)
	}

	reqData, ok := c.Locals("validatedStudentUpdate").(*struct {
		Name   *string `json:"name"`
		Mobile *string `json:"mobile"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Mobile != nil {
		updates["mobile"] = *reqData.Mobile
	}
	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Nothing to update!", nil)
	}

	if err := database.Database.Db.Model(student).Updates(updates).Error; err != nil {
		log.Printf("Error updating student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated successfully!", fiber.Map{
		"student": fiber.Map{
			"id":     student.ID,
			"name":   student.Name,
			"mobile": student.Mobile,
		},
	})
}

// ChangePassword verifies the current password and stores a new hash.
func ChangePassword(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok || userID != uint(targetID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only change your own password!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedChangePassword").(*struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.CurrentPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Current password is incorrect!", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to change password!", nil)
	}

	if err := database.Database.Db.Model(&user).Update("password", string(hashed)).Error; err != nil {
		log.Printf("Error saving password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to change password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully!", nil)
}

// SubmitModule records a student's module work URL. Resubmitting the
// same module updates the existing record and resets its status.
func SubmitModule(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok || userID != uint(targetID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only submit for yourself!", nil)
	}

	reqData, ok := c.Locals("validatedModuleSubmission").(*struct {
		CourseKey     string `json:"courseId"`
		ModuleKey     string `json:"moduleId"`
		SubmissionURL string `json:"submissionUrl"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := utils.ResolveCourseKey(reqData.CourseKey)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND confirmation_status = ? AND is_deleted = ?",
		userID, course.ID, courseModels.ConfirmationConfirmed, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var module courseModels.Module
	if err := db.Where("course_id = ? AND key = ? AND is_deleted = ?", course.ID, reqData.ModuleKey, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var submission models.ModuleSubmission
	err = db.Where("user_id = ? AND course_id = ? AND module_id = ? AND is_deleted = ?",
		userID, course.ID, module.ID, false).First(&submission).Error
	if err == nil {
		submission.SubmissionURL = reqData.SubmissionURL
		submission.Status = models.SubmissionStatusSubmitted
		submission.Feedback = ""
		if err := db.Save(&submission).Error; err != nil {
			log.Printf("Error updating submission: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit module!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission updated!", fiber.Map{
			"submission": submission,
		})
	}

	submission = models.ModuleSubmission{
		UserID:        userID,
		CourseID:      course.ID,
		ModuleID:      module.ID,
		SubmissionURL: reqData.SubmissionURL,
		Status:        models.SubmissionStatusSubmitted,
	}
	if err := db.Create(&submission).Error; err != nil {
		log.Printf("Error saving submission: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module submitted!", fiber.Map{
		"submission": submission,
	})
}

// GetModuleSubmissions lists a student's submissions for one course,
// keyed by the module keys the viewer uses.
func GetModuleSubmissions(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("studentId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	student := requireSelfOrAdmin(c, uint(targetID))
	if student == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot access this student!", nil)
	}

	course, err := utils.ResolveCourseKey(c.Params("courseKey"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	type submissionRow struct {
		models.ModuleSubmission
		ModuleKey   string `json:"module_key"`
		ModuleTitle string `json:"module_title"`
	}

	var rows []submissionRow
	if err := database.Database.Db.Model(&models.ModuleSubmission{}).
		Select("module_submissions.*, modules.key as module_key, modules.title as module_title").
		Joins("JOIN modules ON modules.id = module_submissions.module_id").
		Where("module_submissions.user_id = ? AND module_submissions.course_id = ? AND module_submissions.is_deleted = ?",
			student.ID, course.ID, false).
		Order("modules.order_index asc").
		Scan(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", fiber.Map{
		"course_key":  course.Key,
		"submissions": rows,
	})
}
