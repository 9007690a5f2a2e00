package course

import (
	"time"

	"gorm.io/gorm"
)

const (
	CertificatePending  = "PENDING"
	CertificateApproved = "APPROVED"
	CertificateRejected = "REJECTED"
)

// CertificateRequest is raised by a student after completing a course;
// certificates are issued by admin approval, not automatically.
type CertificateRequest struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	EnrollmentID uint      `json:"enrollment_id" gorm:"index;not null"`
	Status       string    `json:"status" gorm:"default:'PENDING'"`
	RequestedAt  time.Time `json:"requested_at"`
	IsDeleted    bool      `gorm:"default:false"`
}

// Certificate is an issued course-completion certificate.
type Certificate struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	SerialNumber string    `json:"serial_number" gorm:"size:36;uniqueIndex"`
	IssuedAt     time.Time `json:"issued_at"`
	IssuedBy     uint      `json:"issued_by"`
	IsDeleted    bool      `gorm:"default:false"`
}
