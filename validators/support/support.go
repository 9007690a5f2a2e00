package supportValidator

import (
	"strings"

	"skillport/middleware"

	"github.com/gofiber/fiber/v2"
)

// Ticket validator middleware
func Ticket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Subject string `json:"subject"`
			Message string `json:"message"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Subject)) < 3 {
			errors["subject"] = "Subject must be at least 3 characters long!"
		}
		if len(strings.TrimSpace(reqData.Message)) < 10 {
			errors["message"] = "Message must be at least 10 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicket", reqData)
		return c.Next()
	}
}

// TicketResponse validator middleware for admin answers
func TicketResponse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Response string `json:"response"`
			Close    bool   `json:"close"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Response) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"response": "Response is required!"})
		}

		c.Locals("validatedTicketResponse", reqData)
		return c.Next()
	}
}

// List validator middleware for the admin ticket queue
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  int
			Limit int
		})

		reqData.Page = c.QueryInt("page", 1)
		reqData.Limit = c.QueryInt("limit", 20)
		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			reqData.Limit = 20
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
