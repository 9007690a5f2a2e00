package controllers

import (
	"skillport/database"
	"skillport/middleware"
	"skillport/models"
	courseModels "skillport/models/course"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitReview creates or updates the user's review of a course.
// Reviews require a confirmed enrollment.
func SubmitReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil || !course.IsPublished {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !hasConfirmedAccess(userID, course.ID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var review courseModels.CourseReview
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).First(&review).Error; err == nil {
		review.Rating = reqData.Rating
		review.Comment = reqData.Comment
		if err := db.Save(&review).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
		}
	} else {
		review = courseModels.CourseReview{
			UserID:   userID,
			CourseID: course.ID,
			Rating:   reqData.Rating,
			Comment:  reqData.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
		}
	}

	refreshCourseRating(course.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", review)
}

// GetCourseReviews lists reviews for a course with reviewer names.
func GetCourseReviews(c *fiber.Ctx) error {
	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil || !course.IsPublished {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
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

	db := database.Database.Db.Model(&courseModels.CourseReview{}).Where("course_id = ? AND is_deleted = ?", course.ID, false)

	var total int64
	db.Count(&total)

	var reviews []courseModels.CourseReview
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type ReviewWithUser struct {
		courseModels.CourseReview
		UserName string `json:"user_name"`
	}
	result := make([]ReviewWithUser, len(reviews))
	for i, review := range reviews {
		var reviewer models.User
		database.Database.Db.Select("name").Where("id = ?", review.UserID).First(&reviewer)
		result[i] = ReviewWithUser{CourseReview: review, UserName: reviewer.Name}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews": result,
		"rating":  course.Rating,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// refreshCourseRating recomputes the course's average rating.
func refreshCourseRating(courseID uint) {
	var avg float64
	database.Database.Db.Model(&courseModels.CourseReview{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COALESCE(AVG(rating), 0)").Scan(&avg)

	database.Database.Db.Model(&courseModels.Course{}).Where("id = ?", courseID).Update("rating", avg)
}
