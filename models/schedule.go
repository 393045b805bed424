package models

import (
	"time"

	"gorm.io/gorm"
)

// TourSchedule is a dated departure of a tour template.
type TourSchedule struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	TourID        uint      `gorm:"column:tour_id;index" json:"tour_id"`
	DepartureDate time.Time `gorm:"column:departure_date;index" json:"departure_date"`
	Capacity      int       `gorm:"column:capacity;default:0" json:"capacity"`
	PriceOverride *float64  `gorm:"column:price_override" json:"price_override,omitempty"`
}
