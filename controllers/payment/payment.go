package paymentController

import (
	"encoding/json"
	"log"
	"time"

	"skillport/database"
	"skillport/middleware"
	"skillport/models"
	courseModels "skillport/models/course"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentRequest is the manual payment submission from the portal's
// payment modal.
type PaymentRequest struct {
	TransactionID  string         `json:"transactionId" validate:"required,min=4,max=100"`
	CourseKey      string         `json:"courseId" validate:"required"`
	Amount         float64        `json:"amount" validate:"required,gt=0"`
	OriginalAmount float64        `json:"originalAmount" validate:"omitempty,gt=0"`
	ReferralCode   string         `json:"referralCode" validate:"omitempty,max=50"`
	Metadata       map[string]any `json:"metadata" validate:"omitempty"`
}

// resolveDiscount returns the discount percentage a referral code earns
// on a course: the code's percentage when the code is live and the
// course is referral-eligible, otherwise 0.
func resolveDiscount(course *courseModels.Course, code string) int {
	if code == "" || !course.ReferralEligible {
		return 0
	}

	var referral models.ReferralCode
	if err := database.Database.Db.Where("code = ? AND is_active = ? AND is_deleted = ?", code, true, false).First(&referral).Error; err != nil {
		return 0
	}
	if referral.ExpiresAt != nil && time.Now().After(*referral.ExpiresAt) {
		return 0
	}
	return referral.DiscountPercent
}

// VerifyReferral validates a referral code against a course and returns
// the discount the payment modal should apply.
func VerifyReferral(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReferral").(*struct {
		ReferralCode string `json:"referralCode"`
		CourseKey    string `json:"courseId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := utils.ResolveCourseKey(reqData.CourseKey)
	if err != nil || !course.IsPublished {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	discount := resolveDiscount(course, reqData.ReferralCode)
	discountedPrice := course.PriceAmount * float64(100-discount) / 100

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Referral code checked.", fiber.Map{
		"valid":            discount > 0,
		"discount":         discount,
		"original_price":   course.PriceAmount,
		"discounted_price": discountedPrice,
	})
}

// CreatePayment records a manual payment and the pending enrollment it
// pays for. Confirmation is a later admin action; the student is told
// it may take up to 24 hours.
func CreatePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*PaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := utils.ResolveCourseKey(reqData.CourseKey)
	if err != nil || !course.IsPublished {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	db := database.Database.Db

	// Duplicate transaction ids are rejected outright
	var existingPayment models.Payment
	if err := db.Where("transaction_id = ? AND is_deleted = ?", reqData.TransactionID, false).First(&existingPayment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Transaction already submitted!", nil)
	}

	// Already holding a live enrollment for this course
	var existingEnrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND confirmation_status != ? AND is_deleted = ?",
		userID, course.ID, courseModels.ConfirmationRejected, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already have an enrollment for this course!", nil)
	}

	// The discount is recomputed server-side; the client's amount must
	// match the discounted price.
	discount := resolveDiscount(course, reqData.ReferralCode)
	expectedAmount := course.PriceAmount * float64(100-discount) / 100
	if reqData.Amount != expectedAmount {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Amount does not match the course price!", fiber.Map{
			"expected_amount": expectedAmount,
		})
	}

	var metadata datatypes.JSON
	if reqData.Metadata != nil {
		raw, _ := json.Marshal(reqData.Metadata)
		metadata = datatypes.JSON(raw)
	}

	payment := models.Payment{
		Reference:       utils.NewPaymentReference(),
		TransactionID:   reqData.TransactionID,
		UserID:          userID,
		CourseID:        course.ID,
		CourseName:      course.Title,
		Amount:          reqData.Amount,
		OriginalAmount:  course.PriceAmount,
		StudentName:     user.Name,
		StudentEmail:    user.Email,
		ReferralCode:    reqData.ReferralCode,
		DiscountPercent: discount,
		Status:          models.PaymentStatusPending,
		Metadata:        metadata,
	}

	enrollment := courseModels.Enrollment{
		UserID:             userID,
		CourseID:           course.ID,
		Status:             courseModels.EnrollmentEnrolled,
		ConfirmationStatus: courseModels.ConfirmationPending,
		PaymentStatus:      models.PaymentStatusPending,
		TransactionID:      reqData.TransactionID,
	}

	tx := db.Begin()
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit payment!", nil)
	}
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit payment!", nil)
	}
	if reqData.ReferralCode != "" && discount > 0 {
		tx.Model(&models.ReferralCode{}).Where("code = ?", reqData.ReferralCode).
			Update("usage_count", gorm.Expr("usage_count + 1"))
	}
	tx.Commit()

	utils.SendPaymentReceivedEmail(user.Email, user.Name, course.Title, payment.TransactionID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true,
		"Payment submitted! Admin confirmation may take up to 24 hours.", fiber.Map{
			"payment":    payment,
			"enrollment": enrollment,
		})
}

// GetMyPayments lists the signed-in user's payment records.
func GetMyPayments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var payments []models.Payment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
	})
}
