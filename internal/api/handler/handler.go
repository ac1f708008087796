package handler

import "campus-console/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Location     *LocationHandler
	Route        *RouteHandler
	Notification *NotificationHandler
	Navigation   *NavigationHandler
	Report       *ReportHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Location:     NewLocationHandler(svc.Location),
		Route:        NewRouteHandler(svc.Route),
		Notification: NewNotificationHandler(svc.Notification),
		Navigation:   NewNavigationHandler(svc.Navigation),
		Report:       NewReportHandler(svc.Report),
		Export:       NewExportHandler(svc.Export),
	}
}
