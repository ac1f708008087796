package service

import (
	"campus-console/internal/dto"
	"campus-console/internal/model"
)

// page 导航页定义
type page struct {
	key       string
	label     string
	path      string
	adminOnly bool // 非管理员不可进入
	adminEdit bool // 所有人可查看，仅管理员可操作
}

// pages 侧边栏顺序即展示顺序
var pages = []page{
	{key: "dashboard", label: "Dashboard", path: "/dashboard"},
	{key: "users", label: "Users", path: "/dashboard/users", adminOnly: true},
	{key: "locations", label: "Locations", path: "/dashboard/locations", adminOnly: true},
	{key: "routes", label: "Routes", path: "/dashboard/routes", adminOnly: true},
	{key: "find-routes", label: "Find Routes", path: "/dashboard/find-routes"},
	{key: "notifications", label: "Notifications", path: "/dashboard/notifications", adminEdit: true},
	{key: "reports", label: "Reports", path: "/dashboard/reports", adminOnly: true},
}

// NavigationService 基于角色的页面可见性
type NavigationService interface {
	Menu(role string) *dto.NavigationResponse
	CanAccess(role, path string) bool
}

type navigationService struct{}

// NewNavigationService 创建 NavigationService 实例
func NewNavigationService() NavigationService {
	return &navigationService{}
}

// Menu 返回完整菜单；管理页对非管理员可见但 Enabled=false
func (s *navigationService) Menu(role string) *dto.NavigationResponse {
	isAdmin := role == model.RoleAdmin
	items := make([]dto.NavItem, 0, len(pages))
	for _, p := range pages {
		items = append(items, dto.NavItem{
			Key:      p.key,
			Label:    p.label,
			Path:     p.path,
			Enabled:  isAdmin || !p.adminOnly,
			ReadOnly: p.adminEdit && !isAdmin,
		})
	}
	return &dto.NavigationResponse{Role: role, Items: items}
}

// CanAccess 未知路径一律拒绝
func (s *navigationService) CanAccess(role, path string) bool {
	for _, p := range pages {
		if p.path == path {
			return role == model.RoleAdmin || !p.adminOnly
		}
	}
	return false
}
