package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-backend/middleware"
	"tour-backend/services"
	"tour-backend/utils"
)

type NotificationController struct {
	NotificationSvc *services.NotificationService
}

func NewNotificationController(svc *services.NotificationService) *NotificationController {
	return &NotificationController{NotificationSvc: svc}
}

// GET /api/notifications
// The client polls this on an interval; response carries the unread badge count.
func (ctrl *NotificationController) ListNotifications(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing user context")
		return
	}
	notifications, unread, err := ctrl.NotificationSvc.List(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load notifications")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "notifications loaded", gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// POST /api/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing user context")
		return
	}
	notificationID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid notification id")
		return
	}

	err = ctrl.NotificationSvc.MarkRead(userID, notificationID)
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusOK, "notification marked read", gin.H{"id": notificationID})
	case errors.Is(err, services.ErrNotificationNotFound):
		utils.JSONError(c, http.StatusNotFound, "notification not found")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to mark notification read")
	}
}

// POST /api/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing user context")
		return
	}
	if err := ctrl.NotificationSvc.MarkAllRead(userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to mark notifications read")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "all notifications marked read", nil)
}
