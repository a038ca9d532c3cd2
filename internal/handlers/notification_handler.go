// internal/handlers/notification_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bahiapp/bahi-backend/internal/serializers"
	"github.com/bahiapp/bahi-backend/internal/services"
	"github.com/bahiapp/bahi-backend/internal/utils"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.notifications.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Notifications(items))
}

func (h *NotificationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	notification, err := h.notifications.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Notification(notification))
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req services.CreateNotificationRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	notification, err := h.notifications.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, serializers.Notification(notification))
}

func (h *NotificationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.UpdateNotificationRequest
	if !bindJSON(c, &req) || !validate(c, &req) {
		return
	}
	notification, err := h.notifications.Update(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.OKResponse(c, serializers.Notification(notification))
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.notifications.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
