package models

import "gorm.io/gorm"

const (
	SubmissionStatusSubmitted = "SUBMITTED"
	SubmissionStatusReviewed  = "REVIEWED"
	SubmissionStatusApproved  = "APPROVED"
	SubmissionStatusRejected  = "REJECTED"
)

// ModuleSubmission is a student's project/assignment URL for one module
// of a course. Resubmitting replaces the URL and resets the status.
type ModuleSubmission struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null" json:"user_id"`
	CourseID      uint   `gorm:"index;not null" json:"course_id"`
	ModuleID      uint   `gorm:"index;not null" json:"module_id"`
	SubmissionURL string `gorm:"not null" json:"submission_url"`
	Status        string `gorm:"default:'SUBMITTED'" json:"status"`
	Feedback      string `json:"feedback,omitempty"`
	IsDeleted     bool   `gorm:"default:false"`
}
