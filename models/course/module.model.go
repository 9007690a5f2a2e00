package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Module represents an ordered group of lessons within a course
type Module struct {
	gorm.Model
	CourseID    uint           `json:"course_id" gorm:"index;not null"`
	Key         string         `json:"key" gorm:"size:100;index;not null"` // e.g. "module-1", unique per course
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Duration    string         `json:"duration"` // display string, e.g. "2 weeks"
	OrderIndex  int            `json:"order_index" gorm:"default:0"`
	VideoLinks  datatypes.JSON `json:"video_links,omitempty"` // []string
	IsDeleted   bool           `gorm:"default:false"`
}
