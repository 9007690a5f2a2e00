package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusConfirmed = "CONFIRMED"
	PaymentStatusRejected  = "REJECTED"
	PaymentStatusExpired   = "EXPIRED"
)

// Payment is a manual payment record. Students submit the transaction id
// of a bank/UPI transfer; an admin verifies it against the account
// statement and confirms or rejects the record.
type Payment struct {
	gorm.Model
	Reference       string         `gorm:"size:36;uniqueIndex" json:"reference"` // server-side uuid
	TransactionID   string         `gorm:"size:100;uniqueIndex;not null" json:"transaction_id"`
	UserID          uint           `gorm:"index;not null" json:"user_id"`
	CourseID        uint           `gorm:"index;not null" json:"course_id"`
	CourseName      string         `json:"course_name"`
	Amount          float64        `gorm:"not null" json:"amount"`
	OriginalAmount  float64        `json:"original_amount"`
	StudentName     string         `json:"student_name"`
	StudentEmail    string         `gorm:"index" json:"student_email"`
	ReferralCode    string         `json:"referral_code"`
	DiscountPercent int            `gorm:"default:0" json:"discount_percent"`
	Status          string         `gorm:"default:'PENDING'" json:"status"` // PENDING, CONFIRMED, REJECTED, EXPIRED
	RejectionReason string         `json:"rejection_reason,omitempty"`
	Metadata        datatypes.JSON `json:"metadata,omitempty"`
	ReviewedBy      uint           `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	ReminderSentAt  *time.Time     `json:"-"`
	IsDeleted       bool           `gorm:"default:false"`
}

// ReferralCode grants a percentage discount at payment time. Discounts
// never apply to courses with ReferralEligible=false.
type ReferralCode struct {
	gorm.Model
	Code            string     `gorm:"size:50;uniqueIndex;not null" json:"code"`
	DiscountPercent int        `gorm:"not null" json:"discount_percent"`
	IsActive        bool       `json:"is_active"` // set explicitly on create, zero-value insert trap
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	UsageCount      int        `gorm:"default:0" json:"usage_count"`
	IsDeleted       bool       `gorm:"default:false"`
}
