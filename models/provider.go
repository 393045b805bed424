package models

import (
	"time"

	"gorm.io/gorm"
)

// Provider is an external operator supplying tours (transport, lodging, local agency).
type Provider struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string `gorm:"column:name;size:191" json:"name"`
	ContactEmail string `gorm:"column:contact_email;size:191" json:"contact_email,omitempty"`
	ContactPhone string `gorm:"column:contact_phone;size:64" json:"contact_phone,omitempty"`
	Notes        string `gorm:"column:notes;type:text" json:"notes,omitempty"`
}
