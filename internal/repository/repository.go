package repository

import (
	"errors"
	"path/filepath"

	"campus-console/internal/model"
	"campus-console/pkg/csvstore"
)

// ErrRecordNotFound 按主键或唯一键未找到记录
var ErrRecordNotFound = errors.New("记录不存在")

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User         UserRepository
	Location     LocationRepository
	Route        RouteRepository
	Notification NotificationRepository
}

// NewRepository 基于数据目录创建 Repository 聚合
// 每张表对应 dataDir 下的一个 CSV 文件，文件不存在时按空表处理
func NewRepository(dataDir string) *Repository {
	return &Repository{
		User:         NewUserRepo(csvstore.NewTable[model.User](filepath.Join(dataDir, model.UsersFile))),
		Location:     NewLocationRepo(csvstore.NewTable[model.Location](filepath.Join(dataDir, model.LocationsFile))),
		Route:        NewRouteRepo(csvstore.NewTable[model.Route](filepath.Join(dataDir, model.RoutesFile))),
		Notification: NewNotificationRepo(csvstore.NewTable[model.Notification](filepath.Join(dataDir, model.NotificationsFile))),
	}
}
