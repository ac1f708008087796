package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"campus-console/internal/service"
	"campus-console/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportLocations 导出地点表
// GET /api/v1/export/locations
func (h *ExportHandler) ExportLocations(c *gin.Context) {
	h.download(c, h.exportSvc.ExportLocations)
}

// ExportRoutes 导出路线表
// GET /api/v1/export/routes
func (h *ExportHandler) ExportRoutes(c *gin.Context) {
	h.download(c, h.exportSvc.ExportRoutes)
}

func (h *ExportHandler) download(c *gin.Context, export func(ctx context.Context) (*bytes.Buffer, string, error)) {
	buf, filename, err := export(c.Request.Context())
	if err != nil {
		if !handleCommonError(c, err) {
			response.InternalError(c)
		}
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
