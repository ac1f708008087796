package service

import (
	"context"

	"go.uber.org/zap"

	"campus-console/internal/dto"
	"campus-console/internal/model"
	"campus-console/internal/repository"
)

// NotificationService 通知业务接口
//
// Emit 只追加不修改：delivered 固定写 false，本系统内没有消费方会改写它。
type NotificationService interface {
	Emit(ctx context.Context, message string, userID int) error
	List(ctx context.Context) ([]dto.NotificationResponse, error)
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService 创建 NotificationService 实例
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

func (s *notificationService) Emit(ctx context.Context, message string, userID int) error {
	n := &model.Notification{
		UserID:    userID,
		Message:   message,
		Delivered: false,
	}
	if err := s.repo.Notification.Append(ctx, n); err != nil {
		s.logger.Error("写入通知失败", zap.String("message", message), zap.Error(err))
		return err
	}

	s.logger.Debug("通知已写入", zap.Int("id", n.ID), zap.Int("user_id", userID))
	return nil
}

func (s *notificationService) List(ctx context.Context) ([]dto.NotificationResponse, error) {
	list, err := s.repo.Notification.List(ctx)
	if err != nil {
		s.logger.Error("列出通知失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		result = append(result, dto.NotificationResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Message:   n.Message,
			Delivered: bool(n.Delivered),
		})
	}
	return result, nil
}
