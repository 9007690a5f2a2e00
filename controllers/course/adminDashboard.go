package controllers

import (
	"time"

	"skillport/database"
	"skillport/middleware"
	"skillport/models"
	courseModels "skillport/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminDashboard returns platform totals plus a current-vs-previous
// month comparison of enrollments and confirmed payment volume.
func AdminDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalStudents, totalCourses, totalEnrollments, pendingPayments int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleStudent, false).Count(&totalStudents)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&models.Payment{}).Where("status = ? AND is_deleted = ?", models.PaymentStatusPending, false).Count(&pendingPayments)

	monthStart := now.BeginningOfMonth()
	prevMonthStart := now.With(monthStart.AddDate(0, 0, -1)).BeginningOfMonth()

	type periodStats struct {
		Enrollments int64   `json:"enrollments"`
		Payments    int64   `json:"payments"`
		Revenue     float64 `json:"revenue"`
	}

	collect := func(from, to time.Time) periodStats {
		var s periodStats
		db.Model(&courseModels.Enrollment{}).
			Where("created_at >= ? AND created_at < ? AND is_deleted = ?", from, to, false).
			Count(&s.Enrollments)
		db.Model(&models.Payment{}).
			Where("status = ? AND reviewed_at >= ? AND reviewed_at < ? AND is_deleted = ?", models.PaymentStatusConfirmed, from, to, false).
			Count(&s.Payments)
		db.Model(&models.Payment{}).
			Where("status = ? AND reviewed_at >= ? AND reviewed_at < ? AND is_deleted = ?", models.PaymentStatusConfirmed, from, to, false).
			Select("COALESCE(SUM(amount), 0)").Scan(&s.Revenue)
		return s
	}

	currentMonth := collect(monthStart, monthStart.AddDate(0, 1, 0))
	previousMonth := collect(prevMonthStart, monthStart)

	// Per-course enrollment breakdown
	type CourseStats struct {
		CourseKey   string `json:"course_key"`
		CourseName  string `json:"course_name"`
		Enrolled    int64  `json:"enrolled"`
		Confirmed   int64  `json:"confirmed"`
		Completed   int64  `json:"completed"`
	}

	var courses []courseModels.Course
	db.Where("is_deleted = ?", false).Order("created_at asc").Find(&courses)

	courseStats := make([]CourseStats, len(courses))
	for i, course := range courses {
		var enrolled, confirmed, completed int64
		db.Model(&courseModels.Enrollment{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&enrolled)
		db.Model(&courseModels.Enrollment{}).Where("course_id = ? AND confirmation_status = ? AND is_deleted = ?", course.ID, courseModels.ConfirmationConfirmed, false).Count(&confirmed)
		db.Model(&courseModels.Enrollment{}).Where("course_id = ? AND status = ? AND is_deleted = ?", course.ID, courseModels.EnrollmentCompleted, false).Count(&completed)
		courseStats[i] = CourseStats{
			CourseKey:  course.Key,
			CourseName: course.Title,
			Enrolled:   enrolled,
			Confirmed:  confirmed,
			Completed:  completed,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"totals": fiber.Map{
			"students":         totalStudents,
			"courses":          totalCourses,
			"enrollments":      totalEnrollments,
			"pending_payments": pendingPayments,
		},
		"current_month":  currentMonth,
		"previous_month": previousMonth,
		"courses":        courseStats,
	})
}
