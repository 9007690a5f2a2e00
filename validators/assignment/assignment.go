package assignmentValidator

import (
	"strings"

	"skillport/middleware"
	"skillport/models"

	"github.com/gofiber/fiber/v2"
)

// Assignment validator middleware for admin assignment creation
func Assignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseKey string `json:"courseId"`
			ModuleKey string `json:"moduleId"`
			Title     string `json:"title"`
			Brief     string `json:"brief"`
			DueDay    int    `json:"dueDay"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseKey) == "" {
			errors["courseId"] = "Course id is required!"
		}
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.DueDay < 0 {
			errors["dueDay"] = "Due day cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

// Project validator middleware for admin project creation
func Project() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseKey    string   `json:"courseId"`
			Title        string   `json:"title"`
			Brief        string   `json:"brief"`
			Requirements []string `json:"requirements"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseKey) == "" {
			errors["courseId"] = "Course id is required!"
		}
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProject", reqData)
		return c.Next()
	}
}

// SubmissionReview validator middleware for admin review of module
// submissions
func SubmissionReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status   string `json:"status"`
			Feedback string `json:"feedback"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		switch reqData.Status {
		case models.SubmissionStatusReviewed, models.SubmissionStatusApproved, models.SubmissionStatusRejected:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{"status": "Status must be REVIEWED, APPROVED or REJECTED!"})
		}

		c.Locals("validatedSubmissionReview", reqData)
		return c.Next()
	}
}
