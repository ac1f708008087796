package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-console/internal/dto"
	"campus-console/internal/service"
	"campus-console/pkg/response"
)

// RouteHandler 路线模块 HTTP 处理器
type RouteHandler struct {
	routeSvc service.RouteService
}

// NewRouteHandler 创建 RouteHandler
func NewRouteHandler(routeSvc service.RouteService) *RouteHandler {
	return &RouteHandler{routeSvc: routeSvc}
}

// ListRoutes 获取路线列表
// GET /api/v1/routes
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	routes, err := h.routeSvc.List(c.Request.Context())
	if err != nil {
		h.handleRouteError(c, err)
		return
	}

	response.OK(c, gin.H{"list": routes})
}

// GetRoute 获取路线详情
// GET /api/v1/routes/:id
func (h *RouteHandler) GetRoute(c *gin.Context) {
	id, ok := parseID(c, "路线")
	if !ok {
		return
	}

	route, err := h.routeSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleRouteError(c, err)
		return
	}

	response.OK(c, route)
}

// CreateRoute 创建路线
// POST /api/v1/routes
func (h *RouteHandler) CreateRoute(c *gin.Context) {
	var req dto.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	route, err := h.routeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleRouteError(c, err)
		return
	}

	response.Created(c, route)
}

// UpdateRoute 更新路线（整行替换）
// PUT /api/v1/routes/:id
func (h *RouteHandler) UpdateRoute(c *gin.Context) {
	id, ok := parseID(c, "路线")
	if !ok {
		return
	}

	var req dto.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	route, err := h.routeSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRouteError(c, err)
		return
	}

	response.OK(c, route)
}

// DeleteRoute 删除路线
// DELETE /api/v1/routes/:id
func (h *RouteHandler) DeleteRoute(c *gin.Context) {
	id, ok := parseID(c, "路线")
	if !ok {
		return
	}

	if err := h.routeSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleRouteError(c, err)
		return
	}

	response.OK(c, nil)
}

// FindShortest 查询两地之间最短的直达路线
// GET /api/v1/routes/shortest?start=xxx&end=yyy
func (h *RouteHandler) FindShortest(c *gin.Context) {
	var req dto.ShortestRouteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "start 与 end 均不能为空")
		return
	}

	route, err := h.routeSvc.FindShortest(c.Request.Context(), req.Start, req.End)
	if err != nil {
		h.handleRouteError(c, err)
		return
	}

	response.OK(c, route)
}

// ListEndpoints 路线中出现过的地点名（查询下拉框）
// GET /api/v1/routes/endpoints
func (h *RouteHandler) ListEndpoints(c *gin.Context) {
	names, err := h.routeSvc.ListEndpoints(c.Request.Context())
	if err != nil {
		h.handleRouteError(c, err)
		return
	}

	response.OK(c, gin.H{"list": names})
}

// handleRouteError 统一处理路线模块业务错误
func (h *RouteHandler) handleRouteError(c *gin.Context, err error) {
	if handleCommonError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrRouteNotFound):
		response.NotFound(c, 16101, "路线不存在")
	case errors.Is(err, service.ErrNoRouteBetween):
		response.NotFound(c, 16102, "两地之间没有直达路线")
	default:
		response.InternalError(c)
	}
}
