package models

import (
	"time"

	"gorm.io/gorm"
)

// Service is a sellable add-on (meal plan, transfer, insurance) attachable to tours.
type Service struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string  `gorm:"column:name;size:191" json:"name"`
	Description string  `gorm:"column:description;type:text" json:"description,omitempty"`
	Price       float64 `gorm:"column:price" json:"price"`
}

type TourService struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	TourID    uint `gorm:"column:tour_id;uniqueIndex:idx_tour_service;index" json:"tour_id"`
	ServiceID uint `gorm:"column:service_id;uniqueIndex:idx_tour_service" json:"service_id"`

	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}
