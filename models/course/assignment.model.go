package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AssignmentPending   = "PENDING"
	AssignmentCompleted = "COMPLETED"
)

// Assignment is a graded exercise attached to a course (optionally to
// one of its modules).
type Assignment struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	ModuleID   uint   `json:"module_id,omitempty" gorm:"index"`
	Title      string `json:"title"`
	Brief      string `json:"brief" gorm:"type:text"`
	DueDay     int    `json:"due_day" gorm:"default:0"` // days after enrollment confirmation
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// AssignmentCompletion overrides an assignment's default PENDING status
// for one user, synced into the portal's progress summary.
type AssignmentCompletion struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"index;not null"`
	AssignmentID uint   `json:"assignment_id" gorm:"index;not null"`
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	Status       string `json:"status" gorm:"default:'COMPLETED'"`
	IsDeleted    bool   `gorm:"default:false"`
}

// Project is a capstone build attached to a course.
type Project struct {
	gorm.Model
	CourseID     uint           `json:"course_id" gorm:"index;not null"`
	Title        string         `json:"title"`
	Brief        string         `json:"brief" gorm:"type:text"`
	Requirements datatypes.JSON `json:"requirements,omitempty"` // []string
	OrderIndex   int            `json:"order_index" gorm:"default:0"`
	IsDeleted    bool           `gorm:"default:false"`
}
