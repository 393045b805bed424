package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleGuide = "guide"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName string `gorm:"column:full_name;size:191" json:"full_name"`
	Email    string `gorm:"column:email;size:191;uniqueIndex" json:"email"`
	Password string `gorm:"column:password;size:191" json:"-"`
	Role     string `gorm:"column:role;size:32;default:guide;index" json:"role"`
	Phone    string `gorm:"column:phone;size:64" json:"phone,omitempty"`
}
