package course

import (
	"time"

	"gorm.io/gorm"
)

const (
	EnrollmentEnrolled   = "ENROLLED"
	EnrollmentInProgress = "IN_PROGRESS"
	EnrollmentCompleted  = "COMPLETED"

	ConfirmationPending   = "pending"
	ConfirmationConfirmed = "confirmed"
	ConfirmationRejected  = "rejected"
)

// Enrollment tracks a user's enrollment in a course. ConfirmationStatus
// is flipped by an admin after the manual payment check; course content
// is reachable only through confirmed enrollments.
type Enrollment struct {
	gorm.Model
	UserID             uint       `json:"user_id" gorm:"index;not null"`
	CourseID           uint       `json:"course_id" gorm:"index;not null"`
	Status             string     `json:"status" gorm:"default:'ENROLLED'"`              // ENROLLED, IN_PROGRESS, COMPLETED
	ConfirmationStatus string     `json:"confirmation_status" gorm:"default:'pending'"`  // pending, confirmed, rejected
	PaymentStatus      string     `json:"payment_status" gorm:"default:'PENDING'"`
	TransactionID      string     `json:"transaction_id"`
	Progress           float64    `json:"progress" gorm:"default:0"` // completion percentage (0-100)
	CompletedLessons   int        `json:"completed_lessons" gorm:"default:0"`
	TotalLessons       int        `json:"total_lessons" gorm:"default:0"`
	CompletedAt        *time.Time `json:"completed_at"`
	IsDeleted          bool       `gorm:"default:false"`
}
