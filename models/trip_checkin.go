package models

import "time"

// TripCheckIn is an itinerary checkpoint recorded by the guide during a trip.
type TripCheckIn struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	AssignmentID uint `gorm:"column:assignment_id;index" json:"assignment_id"`

	Location  string    `gorm:"column:location;size:191" json:"location"`
	Lat       *float64  `gorm:"column:lat" json:"lat,omitempty"`
	Lng       *float64  `gorm:"column:lng" json:"lng,omitempty"`
	Note      string    `gorm:"column:note;type:text" json:"note,omitempty"`
	CheckedAt time.Time `gorm:"column:checked_at" json:"checked_at"`
}
