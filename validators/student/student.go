package studentValidator

import (
	"net/url"
	"strings"

	"skillport/middleware"

	"github.com/gofiber/fiber/v2"
)

func isValidURL(raw string) bool {
	parsed, err := url.Parse(raw)
	return err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// StudentUpdate validator middleware for profile edits
func StudentUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name   *string `json:"name"`
			Mobile *string `json:"mobile"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Name != nil && len(strings.TrimSpace(*reqData.Name)) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name must be at least 3 characters long!"})
		}

		c.Locals("validatedStudentUpdate", reqData)
		return c.Next()
	}
}

// ChangePassword validator middleware. The confirmation field is
// checked here and dropped before the controller sees the payload.
func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
			ConfirmPassword string `json:"confirmPassword"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CurrentPassword == "" {
			errors["currentPassword"] = "Current password is required!"
		}
		if len(strings.TrimSpace(reqData.NewPassword)) < 8 {
			errors["newPassword"] = "Password must be at least 8 characters long!"
		}
		if reqData.NewPassword != reqData.ConfirmPassword {
			errors["confirmPassword"] = "Passwords do not match!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChangePassword", &struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
		}{
			CurrentPassword: reqData.CurrentPassword,
			NewPassword:     reqData.NewPassword,
		})
		return c.Next()
	}
}

// ModuleSubmission validator middleware
func ModuleSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseKey     string `json:"courseId"`
			ModuleKey     string `json:"moduleId"`
			SubmissionURL string `json:"submissionUrl"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseKey) == "" {
			errors["courseId"] = "Course id is required!"
		}
		if strings.TrimSpace(reqData.ModuleKey) == "" {
			errors["moduleId"] = "Module id is required!"
		}
		if !isValidURL(reqData.SubmissionURL) {
			errors["submissionUrl"] = "A valid submission URL is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModuleSubmission", reqData)
		return c.Next()
	}
}
