package handler

import (
	"github.com/gin-gonic/gin"

	"campus-console/internal/service"
	"campus-console/pkg/response"
)

// NotificationHandler 通知模块 HTTP 处理器（只读）
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler 创建 NotificationHandler
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// ListNotifications 获取通知列表
// GET /api/v1/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	list, err := h.notificationSvc.List(c.Request.Context())
	if err != nil {
		if !handleCommonError(c, err) {
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"list": list})
}
