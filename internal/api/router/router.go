package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-console/config"
	"campus-console/internal/api/handler"
	"campus-console/internal/api/middleware"
	"campus-console/internal/model"
	"campus-console/pkg/jwt"
	"campus-console/pkg/metrics"
	"campus-console/pkg/redis"
)

// maxBodyBytes 请求体上限；所有写接口都只提交单条记录
const maxBodyBytes = 1 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	m := metrics.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics(m))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "redis": rdb != nil})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	adminOnly := middleware.RoleAuth(model.RoleAdmin)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		v1.POST("/auth/login",
			middleware.RateLimit(rdb, cfg.Feature.LoginRateLimit, cfg.Feature.LoginRateWindow, logger),
			h.Auth.Login,
		)

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.GET("/navigation", h.Navigation.GetMenu)
			authorized.GET("/navigation/access", h.Navigation.CheckAccess)

			// 地点模块
			locations := authorized.Group("/locations")
			{
				locations.GET("", h.Location.ListLocations)
				locations.GET("/:id", h.Location.GetLocation)
				locations.POST("", adminOnly, h.Location.CreateLocation)
				locations.PUT("/:id", adminOnly, h.Location.UpdateLocation)
				locations.DELETE("/:id", adminOnly, h.Location.DeleteLocation)
			}

			// 路线模块
			routes := authorized.Group("/routes")
			{
				routes.GET("", h.Route.ListRoutes)
				routes.GET("/endpoints", h.Route.ListEndpoints)
				routes.GET("/shortest", h.Route.FindShortest)
				routes.GET("/:id", h.Route.GetRoute)
				routes.POST("", adminOnly, h.Route.CreateRoute)
				routes.PUT("/:id", adminOnly, h.Route.UpdateRoute)
				routes.DELETE("/:id", adminOnly, h.Route.DeleteRoute)
			}

			// 通知模块（只读）
			authorized.GET("/notifications", h.Notification.ListNotifications)

			// 管理功能
			authorized.GET("/users", adminOnly, h.User.ListUsers)
			authorized.GET("/reports/summary", adminOnly, h.Report.Summary)

			export := authorized.Group("/export", adminOnly)
			{
				export.GET("/locations", h.Export.ExportLocations)
				export.GET("/routes", h.Export.ExportRoutes)
			}
		}
	}

	return r
}
