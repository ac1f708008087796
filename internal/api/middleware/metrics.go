package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"campus-console/pkg/metrics"
)

// Metrics 请求指标中间件
// route 标签使用路由模板（/routes/:id），未匹配的路径统一记为 "unmatched"，避免标签基数膨胀
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
