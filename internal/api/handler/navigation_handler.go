package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-console/internal/dto"
	"campus-console/internal/service"
	"campus-console/pkg/response"
)

// NavigationHandler 导航菜单 HTTP 处理器
type NavigationHandler struct {
	navSvc service.NavigationService
}

// NewNavigationHandler 创建 NavigationHandler
func NewNavigationHandler(navSvc service.NavigationService) *NavigationHandler {
	return &NavigationHandler{navSvc: navSvc}
}

// GetMenu 按当前角色返回侧边栏菜单
// GET /api/v1/navigation
func (h *NavigationHandler) GetMenu(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	response.OK(c, h.navSvc.Menu(role))
}

// CheckAccess 页面守卫：前端切换页面前调用，无权访问时返回 403
// GET /api/v1/navigation/access?path=/dashboard/users
func (h *NavigationHandler) CheckAccess(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var q dto.PageAccessQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "参数校验失败", err.Error())
		return
	}

	if !h.navSvc.CanAccess(role, q.Path) {
		response.Forbidden(c, 10003, "无权访问该页面")
		return
	}
	response.OK(c, dto.PageAccessResponse{Path: q.Path, Allowed: true})
}
