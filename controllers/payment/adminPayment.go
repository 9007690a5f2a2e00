package paymentController

import (
	"log"
	"time"

	"skillport/database"
	"skillport/middleware"
	"skillport/models"
	courseModels "skillport/models/course"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminListPayments returns payment records filtered by status, newest
// first. Defaults to the pending review queue.
func AdminListPayments(c *fiber.Ctx) error {
	validated, ok := c.Locals("validatedList").(*struct {
		Page  int
		Limit int
	})
	page, limit := 1, 20
	if ok {
		page, limit = validated.Page, validated.Limit
	}

	status := c.Query("status", models.PaymentStatusPending)

	db := database.Database.Db
	query := db.Model(&models.Payment{}).Where("is_deleted = ?", false)
	if status != "ALL" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var payments []models.Payment
	if err := query.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// AdminConfirmPayment marks a payment confirmed and unlocks the course
// for the student.
func AdminConfirmPayment(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userId").(uint)

	paymentID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment id!", nil)
	}

	db := database.Database.Db

	var payment models.Payment
	if err := db.Where("id = ? AND is_deleted = ?", paymentID, false).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}
	if payment.Status != models.PaymentStatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment already reviewed!", nil)
	}

	reviewedAt := time.Now()

	tx := db.Begin()
	if err := tx.Model(&payment).Updates(map[string]interface{}{
		"status":      models.PaymentStatusConfirmed,
		"reviewed_by": adminID,
		"reviewed_at": reviewedAt,
	}).Error; err != nil {
		tx.Rollback()
		log.Printf("Error confirming payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm payment!", nil)
	}
	if err := tx.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", payment.UserID, payment.CourseID, false).
		Updates(map[string]interface{}{
			"confirmation_status": courseModels.ConfirmationConfirmed,
			"payment_status":      models.PaymentStatusConfirmed,
		}).Error; err != nil {
		tx.Rollback()
		log.Printf("Error confirming enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm payment!", nil)
	}
	tx.Commit()

	var course courseModels.Course
	if err := db.First(&course, payment.CourseID).Error; err == nil {
		utils.SendEnrollmentConfirmedEmail(payment.StudentEmail, payment.StudentName, course.Title, course.ViewerRoute)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment confirmed.", fiber.Map{
		"payment_id": payment.ID,
		"status":     models.PaymentStatusConfirmed,
	})
}

// AdminRejectPayment marks a payment rejected with a reason the
// student sees on the access screen.
func AdminRejectPayment(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userId").(uint)

	paymentID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment id!", nil)
	}

	reqData, ok := c.Locals("validatedRejection").(*struct {
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var payment models.Payment
	if err := db.Where("id = ? AND is_deleted = ?", paymentID, false).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}
	if payment.Status != models.PaymentStatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment already reviewed!", nil)
	}

	reviewedAt := time.Now()

	tx := db.Begin()
	if err := tx.Model(&payment).Updates(map[string]interface{}{
		"status":           models.PaymentStatusRejected,
		"rejection_reason": reqData.Reason,
		"reviewed_by":      adminID,
		"reviewed_at":      reviewedAt,
	}).Error; err != nil {
		tx.Rollback()
		log.Printf("Error rejecting payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject payment!", nil)
	}
	if err := tx.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", payment.UserID, payment.CourseID, false).
		Updates(map[string]interface{}{
			"confirmation_status": courseModels.ConfirmationRejected,
			"payment_status":      models.PaymentStatusRejected,
		}).Error; err != nil {
		tx.Rollback()
		log.Printf("Error rejecting enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject payment!", nil)
	}
	tx.Commit()

	utils.SendPaymentRejectedEmail(payment.StudentEmail, payment.StudentName, payment.CourseName, reqData.Reason)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment rejected.", fiber.Map{
		"payment_id": payment.ID,
		"status":     models.PaymentStatusRejected,
	})
}

// AdminCreateReferralCode creates a referral code admins hand out in
// campaigns.
func AdminCreateReferralCode(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReferralCreate").(*struct {
		Code            string     `json:"code"`
		DiscountPercent int        `json:"discountPercent"`
		ExpiresAt       *time.Time `json:"expiresAt"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.ReferralCode
	if err := db.Where("code = ? AND is_deleted = ?", reqData.Code, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Referral code already exists!", nil)
	}

	referral := models.ReferralCode{
		Code:            reqData.Code,
		DiscountPercent: reqData.DiscountPercent,
		IsActive:        true,
		ExpiresAt:       reqData.ExpiresAt,
	}
	if err := db.Create(&referral).Error; err != nil {
		log.Printf("Error creating referral code: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create referral code!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Referral code created.", fiber.Map{
		"referral_code": referral,
	})
}
