package models

import "time"

// TripNote is a free-text log entry attached to an assignment.
type TripNote struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AssignmentID uint      `gorm:"column:assignment_id;index" json:"assignment_id"`
	Body         string    `gorm:"column:body;type:text" json:"body"`
	CreatedAt    time.Time `json:"created_at"`
}
