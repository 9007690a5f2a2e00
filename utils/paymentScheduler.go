package utils

import (
	"log"
	"time"

	"skillport/config"
	"skillport/database"
	"skillport/models"
	courseModels "skillport/models/course"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PAYMENT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// remindPendingPayments emails admins about payments that have been
// waiting longer than the review window. One reminder per payment.
func remindPendingPayments() {
	db := database.Database.Db
	cutoff := time.Now().Add(-time.Duration(config.AppConfig.PaymentReminderHours) * time.Hour)

	var stale []models.Payment
	if err := db.Where("status = ? AND created_at <= ? AND reminder_sent_at IS NULL AND is_deleted = false",
		models.PaymentStatusPending, cutoff).Order("created_at asc").Find(&stale).Error; err != nil {
		logScheduler("Error fetching pending payments: " + err.Error())
		return
	}
	if len(stale) == 0 {
		return
	}

	oldest := time.Since(stale[0].CreatedAt).Hours()

	var admins []models.User
	if err := db.Where("role = ? AND is_deleted = false", models.RoleAdmin).Find(&admins).Error; err != nil {
		logScheduler("Error fetching admins: " + err.Error())
		return
	}
	for _, admin := range admins {
		if admin.Email != "" {
			SendPendingPaymentReminderEmail(admin.Email, len(stale), oldest)
		}
	}

	now := time.Now()
	for i := range stale {
		stale[i].ReminderSentAt = &now
		db.Save(&stale[i])
	}
	logScheduler("Reminded admins about pending payments")
}

// expireStalePayments flips payments pending beyond the expiry TTL to
// EXPIRED and drops the linked pending enrollment.
func expireStalePayments() {
	db := database.Database.Db
	cutoff := time.Now().Add(-time.Duration(config.AppConfig.PaymentExpiryHours) * time.Hour)

	var stale []models.Payment
	if err := db.Where("status = ? AND created_at <= ? AND is_deleted = false",
		models.PaymentStatusPending, cutoff).Find(&stale).Error; err != nil {
		logScheduler("Error fetching expirable payments: " + err.Error())
		return
	}

	for _, payment := range stale {
		tx := db.Begin()

		payment.Status = models.PaymentStatusExpired
		if err := tx.Save(&payment).Error; err != nil {
			tx.Rollback()
			logScheduler("Error expiring payment: " + err.Error())
			continue
		}

		var enrollment courseModels.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ? AND confirmation_status = ? AND is_deleted = false",
			payment.UserID, payment.CourseID, courseModels.ConfirmationPending).First(&enrollment).Error; err == nil {
			enrollment.IsDeleted = true
			if err := tx.Save(&enrollment).Error; err != nil {
				tx.Rollback()
				logScheduler("Error removing stale enrollment: " + err.Error())
				continue
			}
		}

		tx.Commit()
		logScheduler("Expired payment " + payment.Reference)
	}
}

// StartPaymentScheduler runs the hourly payment maintenance jobs.
func StartPaymentScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		remindPendingPayments()
		expireStalePayments()
	})

	c.Start()
	logScheduler("Payment scheduler started")
	return c
}
