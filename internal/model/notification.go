package model

// Notification 通知消息，对应 notification.csv
// 只追加：本系统从不修改或删除已有通知，Delivered 也不会被置为 true。
type Notification struct {
	ID        int    `csv:"id"        json:"id"`
	UserID    int    `csv:"user_id"   json:"user_id"`
	Message   string `csv:"message"   json:"message"`
	Delivered Bool   `csv:"delivered" json:"delivered"`
}

// RecordID 实现 csvstore.Record
func (n Notification) RecordID() int { return n.ID }

// NotificationsFile 数据文件名
const NotificationsFile = "notification.csv"
