package services

import (
	"errors"

	"gorm.io/gorm"

	"tour-backend/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// List returns a user's notifications newest first, plus the unread count.
func (s *NotificationService) List(userID uint) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	if err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	var unread int64
	if err := s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread).Error; err != nil {
		return nil, 0, err
	}
	return notifications, unread, nil
}

// MarkRead flips one notification to read. Repeat calls are no-ops.
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	var n models.Notification
	if err := s.DB.Where("id = ? AND user_id = ?", notificationID, userID).
		First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	if n.IsRead {
		return nil
	}
	return s.DB.Model(&n).Update("is_read", true).Error
}

// MarkAllRead flips every unread notification for the user.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
