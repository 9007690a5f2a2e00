package enrollmentController

import (
	"strings"

	"skillport/database"
	"skillport/middleware"
	"skillport/models"
	courseModels "skillport/models/course"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
)

// IsCourseAccessible decides whether the user may open a course's
// content, given any known spelling of its identifier. The key is
// canonicalized first, so historical spellings and casing variants all
// resolve against the same enrollment row.
func IsCourseAccessible(userID uint, key string) (bool, *courseModels.Course) {
	course, err := utils.ResolveCourseKey(key)
	if err != nil {
		return false, nil
	}

	var enrollment courseModels.Enrollment
	err = database.Database.Db.Where("user_id = ? AND course_id = ? AND confirmation_status = ? AND is_deleted = ?",
		userID, course.ID, courseModels.ConfirmationConfirmed, false).First(&enrollment).Error
	return err == nil, course
}

// CheckCourseAccess resolves access and routing for the portal's
// "Continue Learning" action. Pending and rejected enrollments block
// navigation with the reason the portal shows the student.
func CheckCourseAccess(c *fiber.Ctx) error {
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
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Access resolved.", fiber.Map{
			"accessible": false,
			"reason":     "You are not enrolled in this course.",
		})
	}

	switch enrollment.ConfirmationStatus {
	case courseModels.ConfirmationConfirmed:
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Access resolved.", fiber.Map{
			"accessible": true,
			"course_key": course.Key,
			"route":      course.ViewerRoute,
		})
	case courseModels.ConfirmationRejected:
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Access resolved.", fiber.Map{
			"accessible": false,
			"reason":     "Your payment could not be verified. Please contact support.",
		})
	default:
		// Unknown statuses are treated as still pending
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Access resolved.", fiber.Map{
			"accessible": false,
			"reason":     "Your payment is being verified. Admin confirmation may take up to 24 hours.",
		})
	}
}

// GetPurchasedCourses returns the learner's enrolled courses with
// payment/confirmation metadata, looked up by email for the portal
// dashboard. Students can only query their own records.
func GetPurchasedCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	email := strings.ToLower(strings.TrimSpace(c.Params("email")))
	if user.Role != models.RoleAdmin && !strings.EqualFold(user.Email, email) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access Denied!", nil)
	}

	var target models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", email, false).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", target.ID, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrolledCourseSummary struct {
		courseModels.Enrollment
		CourseKey   string  `json:"course_key"`
		CourseName  string  `json:"course_name"`
		Thumbnail   string  `json:"thumbnail_url"`
		Route       string  `json:"route"`
		PriceAmount float64 `json:"price_amount"`
	}

	result := make([]EnrolledCourseSummary, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).First(&course).Error; err != nil {
			continue
		}
		result = append(result, EnrolledCourseSummary{
			Enrollment:  enrollment,
			CourseKey:   course.Key,
			CourseName:  course.Title,
			Thumbnail:   course.ThumbnailURL,
			Route:       course.ViewerRoute,
			PriceAmount: course.PriceAmount,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"courses": result,
	})
}

// GetUserEnrollments lists the signed-in user's enrollments, paginated.
func GetUserEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND is_deleted = ?", userID, false)

	var total int64
	db.Count(&total)

	var enrollments []courseModels.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	response := map[string]interface{}{
		"enrollments": enrollments,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", response)
}
