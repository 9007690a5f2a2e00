package controllers

import (
	"skillport/database"
	"skillport/middleware"
	courseModels "skillport/models/course"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a course with its canonical key.
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	key := utils.NormalizeCourseKey(reqData.Key)

	// The canonical key must not collide with an existing key or alias
	if err := db.Where("key = ? AND is_deleted = ?", key, false).First(&courseModels.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course key already exists!", nil)
	}
	if err := db.Where("alias = ? AND is_deleted = ?", key, false).First(&courseModels.CourseAlias{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course key conflicts with an existing alias!", nil)
	}

	referralEligible := true
	if reqData.ReferralEligible != nil {
		referralEligible = *reqData.ReferralEligible
	}
	currency := reqData.Currency
	if currency == "" {
		currency = "BDT"
	}
	viewerRoute := reqData.ViewerRoute
	if viewerRoute == "" {
		viewerRoute = "/courses/" + key
	}

	course := courseModels.Course{
		Key:              key,
		Title:            reqData.Title,
		Description:      reqData.Description,
		Category:         reqData.Category,
		Author:           reqData.Author,
		Duration:         reqData.Duration,
		PriceAmount:      reqData.PriceAmount,
		Currency:         currency,
		ViewerRoute:      viewerRoute,
		ReferralEligible: referralEligible,
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates course fields and publish state.
func AdminUpdateCourse(c *fiber.Ctx) error {
	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Category != nil {
		course.Category = *reqData.Category
	}
	if reqData.Author != nil {
		course.Author = *reqData.Author
	}
	if reqData.Duration != nil {
		course.Duration = *reqData.Duration
	}
	if reqData.PriceAmount != nil {
		course.PriceAmount = *reqData.PriceAmount
	}
	if reqData.ThumbnailURL != nil {
		course.ThumbnailURL = *reqData.ThumbnailURL
	}
	if reqData.ViewerRoute != nil {
		course.ViewerRoute = *reqData.ViewerRoute
	}
	if reqData.ReferralEligible != nil {
		course.ReferralEligible = *reqData.ReferralEligible
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminAddCourseAlias registers another accepted spelling for a course.
func AdminAddCourseAlias(c *fiber.Ctx) error {
	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData := new(struct {
		Alias string `json:"alias"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Alias == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Alias is required!", nil)
	}

	alias := utils.NormalizeCourseKey(reqData.Alias)
	db := database.Database.Db

	if err := db.Where("key = ? AND is_deleted = ?", alias, false).First(&courseModels.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Alias conflicts with a canonical course key!", nil)
	}
	if err := db.Where("alias = ? AND is_deleted = ?", alias, false).First(&courseModels.CourseAlias{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Alias already registered!", nil)
	}

	record := courseModels.CourseAlias{Alias: alias, CourseID: course.ID}
	if err := db.Create(&record).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register alias!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Alias registered successfully!", record)
}

// AdminUploadThumbnail stores a course thumbnail image.
func AdminUploadThumbnail(c *fiber.Ctx) error {
	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail file is required!", nil)
	}

	path, err := utils.SaveUploadedFile(file, "./public/thumbnails")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
	}

	course.ThumbnailURL = utils.GetFileURL(path)
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail uploaded successfully!", fiber.Map{
		"thumbnail_url": course.ThumbnailURL,
	})
}
