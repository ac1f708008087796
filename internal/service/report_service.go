package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"campus-console/internal/dto"
	"campus-console/internal/repository"
)

// ReportService 统计概览
type ReportService interface {
	Summary(ctx context.Context) (*dto.ReportSummary, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

func (s *reportService) Summary(ctx context.Context) (*dto.ReportSummary, error) {
	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("统计地点失败", zap.Error(err))
		return nil, err
	}
	routes, err := s.repo.Route.List(ctx)
	if err != nil {
		s.logger.Error("统计路线失败", zap.Error(err))
		return nil, err
	}
	notifications, err := s.repo.Notification.List(ctx)
	if err != nil {
		s.logger.Error("统计通知失败", zap.Error(err))
		return nil, err
	}

	summary := &dto.ReportSummary{
		TotalLocations: len(locations),
		TotalRoutes:    len(routes),
		Notifications:  len(notifications),
		Buildings:      []dto.BuildingCount{},
	}

	// 按楼栋聚合
	byBuilding := make(map[string]*dto.BuildingCount)
	for _, l := range locations {
		bc, ok := byBuilding[l.Building]
		if !ok {
			bc = &dto.BuildingCount{Building: l.Building}
			byBuilding[l.Building] = bc
		}
		bc.Locations++
		if l.Accessible {
			bc.Accessible++
			summary.AccessibleLocations++
		}
	}
	for _, bc := range byBuilding {
		summary.Buildings = append(summary.Buildings, *bc)
	}
	sort.Slice(summary.Buildings, func(i, j int) bool {
		if summary.Buildings[i].Locations != summary.Buildings[j].Locations {
			return summary.Buildings[i].Locations > summary.Buildings[j].Locations
		}
		return summary.Buildings[i].Building < summary.Buildings[j].Building
	})

	// 路线距离
	measured := 0
	for _, r := range routes {
		if r.Accessible {
			summary.AccessibleRoutes++
		}
		if r.DistanceM.Valid {
			summary.TotalDistanceM += r.DistanceM.Float64
			measured++
		}
	}
	if measured > 0 {
		summary.AverageDistanceM = summary.TotalDistanceM / float64(measured)
	}

	return summary, nil
}
