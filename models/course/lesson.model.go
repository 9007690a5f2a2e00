package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	LessonLanguageHTML   = "html"
	LessonLanguagePython = "python"
)

// Lesson is a single content unit. Within a module a lesson is
// addressed by OrderIndex; indices are kept dense (0..n-1) by the
// admin create/reorder handlers.
//
// Body is a structured document rather than raw markup: a JSON array of
// typed blocks ({"type":"paragraph"|"heading"|"code"|"list", ...}) that
// the client renders through fixed block components.
type Lesson struct {
	gorm.Model
	CourseID         uint           `json:"course_id" gorm:"index;not null"`
	ModuleID         uint           `json:"module_id" gorm:"index;not null"`
	OrderIndex       int            `json:"order_index" gorm:"default:0"`
	Title            string         `json:"title"`
	Duration         string         `json:"duration,omitempty"`
	VideoURL         string         `json:"video_url,omitempty"`
	Language         string         `json:"language" gorm:"default:'html'"` // html, python
	Body             datatypes.JSON `json:"body"`
	SyntaxRefs       datatypes.JSON `json:"syntax_refs,omitempty"`        // [{"title": ..., "content": ...}]
	TerminalCommands datatypes.JSON `json:"terminal_commands,omitempty"`  // []string
	LiveCodeTemplate string         `json:"live_code_template,omitempty" gorm:"type:text"`
	// No column default, same zero-value insert trap as
	// Course.ReferralEligible. Writers always set this field.
	IsPublished      bool           `json:"is_published"`
	IsDeleted        bool           `gorm:"default:false"`
}

// LessonCompletion is one completed (module, lesson) pair for a user,
// created only by the explicit lesson-complete action.
type LessonCompletion struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null"`
	CourseID  uint `json:"course_id" gorm:"index;not null"`
	ModuleID  uint `json:"module_id" gorm:"index;not null"`
	LessonID  uint `json:"lesson_id" gorm:"index;not null"`
	IsDeleted bool `gorm:"default:false"`
}
