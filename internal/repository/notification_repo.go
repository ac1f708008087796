package repository

import (
	"context"

	"campus-console/internal/model"
	"campus-console/pkg/csvstore"
)

// NotificationRepository 通知数据访问接口（只追加）
type NotificationRepository interface {
	Append(ctx context.Context, n *model.Notification) error
	List(ctx context.Context) ([]model.Notification, error)
}

type notificationRepo struct {
	entityTable[model.Notification]
}

// NewNotificationRepo 创建 NotificationRepository 实例
func NewNotificationRepo(table *csvstore.Table[model.Notification]) NotificationRepository {
	return &notificationRepo{entityTable[model.Notification]{table: table}}
}

func (r *notificationRepo) Append(ctx context.Context, n *model.Notification) error {
	created, err := r.create(ctx, func(id int) model.Notification {
		row := *n
		row.ID = id
		return row
	})
	if err != nil {
		return err
	}
	*n = created
	return nil
}

func (r *notificationRepo) List(ctx context.Context) ([]model.Notification, error) {
	return r.list(ctx)
}
