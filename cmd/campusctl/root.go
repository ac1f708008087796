package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"campus-console/config"
	"campus-console/internal/repository"
	"campus-console/internal/service"
	applogger "campus-console/pkg/logger"
)

// 子命令共享的运行时依赖，在 PersistentPreRunE 中初始化
var (
	dataDir string
	cfg     *config.Config
	repo    *repository.Repository
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "campusctl",
	Short: "Campus console maintenance tool",
	Long: `Maintenance commands that work directly on the campus console data directory.

Examples:
  campusctl hash-password 's3cret'
  campusctl find-route Gym Library --data-dir ./data
  campusctl summary`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = applogger.NewLogger(&config.LogConfig{Level: "warn", Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		// CLI 不签发 Token，只需要数据目录与通知配置
		cfg = &config.Config{
			Storage: config.StorageConfig{DataDir: dataDir},
			Feature: config.FeatureConfig{NotifyLocationChanges: true, NotificationUserID: 1},
		}
		repo = repository.NewRepository(dataDir)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "data", "directory holding the CSV data files")
}

func newRouteService() service.RouteService {
	return service.NewRouteService(cfg, repo, service.NewNotificationService(repo, logger), logger)
}
