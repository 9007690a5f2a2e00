package sandboxValidator

import (
	"skillport/middleware"

	"github.com/gofiber/fiber/v2"
)

// Snippets above this size are rejected before they reach the
// execution engine.
const maxCodeBytes = 64 * 1024

// Preview validator middleware for the HTML live-code pane
func Preview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Code string `json:"code"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Code) > maxCodeBytes {
			return middleware.ValidationErrorResponse(c, map[string]string{"code": "Code exceeds the maximum size!"})
		}

		c.Locals("validatedPreview", reqData)
		return c.Next()
	}
}

// Run validator middleware for the Python runner
func Run() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Code  string `json:"code"`
			Stdin string `json:"stdin"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Code == "" {
			errors["code"] = "Code is required!"
		}
		if len(reqData.Code) > maxCodeBytes {
			errors["code"] = "Code exceeds the maximum size!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRun", reqData)
		return c.Next()
	}
}
