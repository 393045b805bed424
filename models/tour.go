package models

import (
	"time"

	"gorm.io/gorm"
)

type Tour struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Nullable so tours without a provider don't insert FK=0.
	ProviderID *uint `gorm:"column:provider_id;index" json:"provider_id,omitempty"`

	Title        string  `gorm:"column:title;size:191" json:"title"`
	Code         string  `gorm:"column:code;size:64;uniqueIndex" json:"code"`
	Description  string  `gorm:"column:description;type:text" json:"description,omitempty"`
	BasePrice    float64 `gorm:"column:base_price" json:"base_price"`
	DurationDays int     `gorm:"column:duration_days;default:1" json:"duration_days"`
	Active       bool    `gorm:"column:active;default:true" json:"active"`

	Provider  *Provider      `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Images    []TourImage    `gorm:"foreignKey:TourID" json:"images,omitempty"`
	Services  []TourService  `gorm:"foreignKey:TourID" json:"services,omitempty"`
	Policies  []TourPolicy   `gorm:"foreignKey:TourID" json:"policies,omitempty"`
	Schedules []TourSchedule `gorm:"foreignKey:TourID" json:"schedules,omitempty"`
}

type TourImage struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	TourID uint `gorm:"column:tour_id;index" json:"tour_id"`

	URL       string `gorm:"column:url;size:512" json:"url"`
	Caption   string `gorm:"column:caption;size:191" json:"caption,omitempty"`
	SortOrder int    `gorm:"column:sort_order;default:0" json:"sort_order"`
}
