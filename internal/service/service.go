package service

import (
	"go.uber.org/zap"

	"campus-console/config"
	"campus-console/internal/repository"
	"campus-console/pkg/jwt"
	"campus-console/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	User         UserService
	Location     LocationService
	Route        RouteService
	Notification NotificationService
	Navigation   NavigationService
	Report       ReportService
	Export       ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	notifier := NewNotificationService(repo, logger)
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:         NewUserService(repo, logger),
		Location:     NewLocationService(cfg, repo, notifier, logger),
		Route:        NewRouteService(cfg, repo, notifier, logger),
		Notification: notifier,
		Navigation:   NewNavigationService(),
		Report:       NewReportService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
