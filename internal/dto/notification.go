package dto

// NotificationResponse 通知响应
type NotificationResponse struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	Message   string `json:"message"`
	Delivered bool   `json:"delivered"`
}
