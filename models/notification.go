package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Notification kinds.
const (
	NotificationTourAssigned = "tour_assigned"
)

// NotificationData is the typed payload stored in Notification.Data.
// Today only the tour_assigned kind exists; new kinds add fields here
// (or their own struct) rather than writing loose maps into the column.
type NotificationData struct {
	TourID       uint   `json:"tour_id"`
	TourTitle    string `json:"tour_title"`
	AssignmentID uint   `json:"assignment_id"`
}

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	UserID  uint           `gorm:"column:user_id;index" json:"user_id"`
	Kind    string         `gorm:"column:kind;size:64;index" json:"kind"`
	Title   string         `gorm:"column:title;size:191" json:"title"`
	Message string         `gorm:"column:message;type:text" json:"message"`
	Data    datatypes.JSON `gorm:"column:data" json:"data,omitempty"`
	IsRead  bool           `gorm:"column:is_read;default:false;index" json:"is_read"`
}

// SetData marshals a typed payload into the JSON column.
func (n *Notification) SetData(d NotificationData) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	n.Data = datatypes.JSON(raw)
	return nil
}

// DecodeData reads the typed payload back out of the JSON column.
func (n *Notification) DecodeData() (NotificationData, error) {
	var d NotificationData
	if len(n.Data) == 0 {
		return d, nil
	}
	err := json.Unmarshal(n.Data, &d)
	return d, err
}
