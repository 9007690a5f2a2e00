package paymentValidator

import (
	"strings"
	"time"

	paymentController "skillport/controllers/payment"
	"skillport/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Payment validator middleware. The transaction id must be present
// before anything touches the database.
func Payment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(paymentController.PaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.TransactionID = strings.TrimSpace(reqData.TransactionID)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "TransactionID":
					errors["transactionId"] = "Transaction id is required!"
				case "CourseKey":
					errors["courseId"] = "Course id is required!"
				case "Amount":
					errors["amount"] = "Amount must be greater than zero!"
				default:
					errors[fieldErr.Field()] = "Invalid value!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}

// Referral validator middleware for discount checks
func Referral() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ReferralCode string `json:"referralCode"`
			CourseKey    string `json:"courseId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.ReferralCode) == "" {
			errors["referralCode"] = "Referral code is required!"
		}
		if strings.TrimSpace(reqData.CourseKey) == "" {
			errors["courseId"] = "Course id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReferral", reqData)
		return c.Next()
	}
}

// Rejection validator middleware for admin payment rejection
func Rejection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Reason) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"reason": "Rejection reason is required!"})
		}

		c.Locals("validatedRejection", reqData)
		return c.Next()
	}
}

// ReferralCreate validator middleware for admin referral code creation
func ReferralCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Code            string     `json:"code"`
			DiscountPercent int        `json:"discountPercent"`
			ExpiresAt       *time.Time `json:"expiresAt"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Code = strings.ToUpper(strings.TrimSpace(reqData.Code))
		if len(reqData.Code) < 3 {
			errors["code"] = "Code must be at least 3 characters long!"
		}
		if reqData.DiscountPercent < 1 || reqData.DiscountPercent > 100 {
			errors["discountPercent"] = "Discount must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReferralCreate", reqData)
		return c.Next()
	}
}

// List validator middleware for admin queue pagination
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
