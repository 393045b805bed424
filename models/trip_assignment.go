package models

import (
	"time"

	"gorm.io/gorm"
)

// AssignmentStatus is the lifecycle of a guide's trip assignment.
type AssignmentStatus int

const (
	AssignmentPending   AssignmentStatus = 0
	AssignmentAccepted  AssignmentStatus = 1
	AssignmentCompleted AssignmentStatus = 2
	AssignmentCancelled AssignmentStatus = 3
)

func (s AssignmentStatus) Valid() bool {
	return s >= AssignmentPending && s <= AssignmentCancelled
}

func (s AssignmentStatus) String() string {
	switch s {
	case AssignmentPending:
		return "pending"
	case AssignmentAccepted:
		return "accepted"
	case AssignmentCompleted:
		return "completed"
	case AssignmentCancelled:
		return "cancelled"
	}
	return "unknown"
}

// CanTransition reports whether moving to next is a legal status change.
// pending -> accepted|cancelled, accepted -> completed|cancelled,
// completed and cancelled are terminal. Writing the current status back
// is allowed so idempotent updates don't fail.
func (s AssignmentStatus) CanTransition(next AssignmentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case AssignmentPending:
		return next == AssignmentAccepted || next == AssignmentCancelled
	case AssignmentAccepted:
		return next == AssignmentCompleted || next == AssignmentCancelled
	}
	return false
}

// TripAssignment ties a guide to a tour. TourInstanceID is nil for a
// template-level assignment (the guide covers the tour in general) and set
// when the guide is assigned to one dated departure.
type TripAssignment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	TourID         uint             `gorm:"column:tour_id;index;uniqueIndex:idx_tour_user_instance" json:"tour_id"`
	UserID         uint             `gorm:"column:user_id;uniqueIndex:idx_tour_user_instance" json:"user_id"`
	TourInstanceID *uint            `gorm:"column:tour_instance_id;uniqueIndex:idx_tour_user_instance" json:"tour_instance_id,omitempty"`
	Status         AssignmentStatus `gorm:"column:status;default:0" json:"status"`

	Tour  Tour `gorm:"foreignKey:TourID" json:"tour,omitempty"`
	Guide User `gorm:"foreignKey:UserID" json:"guide,omitempty"`
}
