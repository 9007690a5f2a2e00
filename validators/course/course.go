package courseValidator

import (
	"strings"

	"skillport/middleware"
	courseModels "skillport/models/course"

	"github.com/gofiber/fiber/v2"
)

// List validator middleware for paginated listings
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if page := c.QueryInt("page", 0); page > 0 {
			reqData.Page = &page
		}
		if limit := c.QueryInt("limit", 0); limit > 0 {
			if limit > 100 {
				return middleware.ValidationErrorResponse(c, map[string]string{"limit": "Limit cannot exceed 100!"})
			}
			reqData.Limit = &limit
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// Course validator middleware for course creation
func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Key              string  `json:"key"`
			Title            string  `json:"title"`
			Description      string  `json:"description"`
			Category         string  `json:"category"`
			Author           string  `json:"author"`
			Duration         int64   `json:"duration"`
			PriceAmount      float64 `json:"priceAmount"`
			Currency         string  `json:"currency"`
			ViewerRoute      string  `json:"viewerRoute"`
			ReferralEligible *bool   `json:"referralEligible"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Key)) < 3 {
			errors["key"] = "Course key must be at least 3 characters long!"
		}
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.PriceAmount < 0 {
			errors["priceAmount"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseUpdate validator middleware for partial course updates
func CourseUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title            *string  `json:"title"`
			Description      *string  `json:"description"`
			Category         *string  `json:"category"`
			Author           *string  `json:"author"`
			Duration         *int64   `json:"duration"`
			PriceAmount      *float64 `json:"priceAmount"`
			ThumbnailURL     *string  `json:"thumbnailUrl"`
			ViewerRoute      *string  `json:"viewerRoute"`
			ReferralEligible *bool    `json:"referralEligible"`
			IsPublished      *bool    `json:"isPublished"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.PriceAmount != nil && *reqData.PriceAmount < 0 {
			errors["priceAmount"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// Module validator middleware for module creation
func Module() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Key         string   `json:"key"`
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Duration    string   `json:"duration"`
			VideoLinks  []string `json:"videoLinks"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title must be at least 3 characters long!"})
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// ModuleUpdate validator middleware for partial module updates
func ModuleUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       *string  `json:"title"`
			Description *string  `json:"description"`
			Duration    *string  `json:"duration"`
			VideoLinks  []string `json:"videoLinks"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title must be at least 3 characters long!"})
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// Lesson validator middleware for lesson creation
func Lesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title            string           `json:"title"`
			Duration         string           `json:"duration"`
			VideoURL         string           `json:"videoUrl"`
			Language         string           `json:"language"`
			Body             []map[string]any `json:"body"`
			SyntaxRefs       []map[string]any `json:"syntaxRefs"`
			TerminalCommands []string         `json:"terminalCommands"`
			LiveCodeTemplate string           `json:"liveCodeTemplate"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Language != "" &&
			reqData.Language != courseModels.LessonLanguageHTML &&
			reqData.Language != courseModels.LessonLanguagePython {
			errors["language"] = "Language must be html or python!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// LessonUpdate validator middleware for partial lesson updates
func LessonUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title            *string          `json:"title"`
			Duration         *string          `json:"duration"`
			VideoURL         *string          `json:"videoUrl"`
			Language         *string          `json:"language"`
			Body             []map[string]any `json:"body"`
			SyntaxRefs       []map[string]any `json:"syntaxRefs"`
			TerminalCommands []string         `json:"terminalCommands"`
			LiveCodeTemplate *string          `json:"liveCodeTemplate"`
			IsPublished      *bool            `json:"isPublished"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Language != nil &&
			*reqData.Language != courseModels.LessonLanguageHTML &&
			*reqData.Language != courseModels.LessonLanguagePython {
			errors["language"] = "Language must be html or python!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// Review validator middleware
func Review() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Rating < 1 || reqData.Rating > 5 {
			return middleware.ValidationErrorResponse(c, map[string]string{"rating": "Rating must be between 1 and 5!"})
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
