package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

type User struct {
	gorm.Model
	ProfileImage        string `gorm:"default:''"`
	Name                string `gorm:"default:''"`
	Email               string `gorm:"unique;not null"`
	Mobile              string `gorm:"default:''"`
	Role                string `gorm:"default:'STUDENT'"` // STUDENT, ADMIN
	Password            string `gorm:"not null" json:"-"`
	IsEmailVerified     bool   `gorm:"default:false"`
	Bio                 string
	Address             string
	City                string
	Country             string
	FailedLoginAttempts int        `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	LastLogin           time.Time  `gorm:"default:NULL"`
	IsDeleted           bool       `gorm:"default:false"`
}
