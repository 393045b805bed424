package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	TourID     uint  `gorm:"column:tour_id;index" json:"tour_id"`
	ScheduleID *uint `gorm:"column:schedule_id;index" json:"schedule_id,omitempty"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	CustomerName  string `gorm:"column:customer_name;size:191" json:"customer_name"`
	CustomerEmail string `gorm:"column:customer_email;size:191" json:"customer_email,omitempty"`
	CustomerPhone string `gorm:"column:customer_phone;size:64" json:"customer_phone,omitempty"`
	Status        string `gorm:"column:status;size:32;default:pending;index" json:"status"`
	Pax           int    `gorm:"column:pax;default:1" json:"pax"`

	// FinalPrice = BasePrice - Discount; LeftPayment is the outstanding balance.
	BasePrice   float64 `gorm:"column:base_price" json:"base_price"`
	Discount    float64 `gorm:"column:discount;default:0" json:"discount"`
	FinalPrice  float64 `gorm:"column:final_price" json:"final_price"`
	LeftPayment float64 `gorm:"column:left_payment;default:0" json:"left_payment"`

	Tour     Tour          `gorm:"foreignKey:TourID" json:"tour,omitempty"`
	Schedule *TourSchedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
}
