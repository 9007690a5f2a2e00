package course

import (
	"gorm.io/gorm"
)

// Course represents a learning course. Key is the canonical identifier
// used everywhere a course is referenced from outside the database;
// historical/alias spellings are reconciled through CourseAlias.
type Course struct {
	gorm.Model
	Key              string  `json:"key" gorm:"size:100;uniqueIndex;not null"` // e.g. "frontend-beginner"
	Title            string  `json:"title"`
	Description      string  `json:"description" gorm:"type:text"`
	Category         string  `json:"category"`
	Author           string  `json:"author"`
	Duration         int64   `json:"duration" gorm:"default:0"` // duration in hours
	PriceAmount      float64 `json:"price_amount" gorm:"default:0"`
	Currency         string  `json:"currency" gorm:"default:'BDT'"`
	ThumbnailURL     string  `json:"thumbnail_url"`
	ViewerRoute      string  `json:"viewer_route"` // client route for this course's lesson viewer
	// No column default: gorm skips zero-value fields on insert when a
	// default tag is present, which would turn an explicit false into
	// true. Writers always set this field.
	ReferralEligible bool    `json:"referral_eligible"`
	Rating           float64 `json:"rating" gorm:"default:0"`
	IsPublished      bool    `json:"is_published" gorm:"default:false"`
	IsDeleted        bool    `gorm:"default:false"`
}

// CourseAlias maps a historical or differently-cased spelling of a
// course identifier onto its canonical course. Aliases are stored
// lowercased; lookups lowercase their input first, so casing variants
// never need their own rows.
type CourseAlias struct {
	gorm.Model
	Alias     string `json:"alias" gorm:"size:100;uniqueIndex;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	IsDeleted bool   `gorm:"default:false"`
}
