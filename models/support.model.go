package models

import "gorm.io/gorm"

const (
	TicketStatusOpen     = "OPEN"
	TicketStatusAnswered = "ANSWERED"
	TicketStatusClosed   = "CLOSED"
)

// SupportTicket is raised by students, typically after a rejected
// payment or an access problem.
type SupportTicket struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	Subject   string `gorm:"not null" json:"subject"`
	Message   string `gorm:"type:text;not null" json:"message"`
	CourseKey string `json:"course_key,omitempty"`
	Status    string `gorm:"default:'OPEN'" json:"status"`
	Response  string `gorm:"type:text" json:"response,omitempty"`
	IsDeleted bool   `gorm:"default:false"`
}
