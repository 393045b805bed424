package models

import (
	"time"

	"gorm.io/gorm"
)

// Policy is a reusable terms/conditions text block (cancellation terms, luggage
// rules) attachable to tours.
type Policy struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title string `gorm:"column:title;size:191" json:"title"`
	Body  string `gorm:"column:body;type:text" json:"body"`
}

type TourPolicy struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TourID   uint `gorm:"column:tour_id;uniqueIndex:idx_tour_policy;index" json:"tour_id"`
	PolicyID uint `gorm:"column:policy_id;uniqueIndex:idx_tour_policy" json:"policy_id"`

	Policy Policy `gorm:"foreignKey:PolicyID" json:"policy,omitempty"`
}
