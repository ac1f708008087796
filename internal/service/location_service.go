package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"campus-console/config"
	"campus-console/internal/dto"
	"campus-console/internal/model"
	"campus-console/internal/repository"
)

// ── 地点模块业务错误 ──

var (
	ErrLocationNotFound = errors.New("地点不存在")
)

// LocationService 地点业务接口
type LocationService interface {
	Create(ctx context.Context, req *dto.LocationRequest) (*dto.LocationResponse, error)
	GetByID(ctx context.Context, id int) (*dto.LocationResponse, error)
	List(ctx context.Context) ([]dto.LocationResponse, error)
	Update(ctx context.Context, id int, req *dto.LocationRequest) (*dto.LocationResponse, error)
	Delete(ctx context.Context, id int) error
}

type locationService struct {
	cfg      *config.Config
	repo     *repository.Repository
	notifier NotificationService
	logger   *zap.Logger
}

// NewLocationService 创建 LocationService 实例
func NewLocationService(cfg *config.Config, repo *repository.Repository, notifier NotificationService, logger *zap.Logger) LocationService {
	return &locationService{cfg: cfg, repo: repo, notifier: notifier, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *locationService) Create(ctx context.Context, req *dto.LocationRequest) (*dto.LocationResponse, error) {
	loc, err := buildLocation(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Location.Create(ctx, loc); err != nil {
		s.logger.Error("创建地点失败", zap.Error(err))
		return nil, err
	}

	s.notify(ctx, fmt.Sprintf("New location '%s' added", loc.Name))
	return toLocationResponse(loc), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *locationService) GetByID(ctx context.Context, id int) (*dto.LocationResponse, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("查询地点失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	return toLocationResponse(loc), nil
}

// ────────────────────── List ──────────────────────

func (s *locationService) List(ctx context.Context) ([]dto.LocationResponse, error) {
	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("列出地点失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		result = append(result, *toLocationResponse(&locations[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *locationService) Update(ctx context.Context, id int, req *dto.LocationRequest) (*dto.LocationResponse, error) {
	loc, err := buildLocation(req)
	if err != nil {
		return nil, err
	}
	loc.ID = id

	if err := s.repo.Location.Update(ctx, loc); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("更新地点失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	s.notify(ctx, fmt.Sprintf("Location '%s' updated", loc.Name))
	return toLocationResponse(loc), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 幂等：id 不存在时同样返回 nil
func (s *locationService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Location.Delete(ctx, id); err != nil {
		s.logger.Error("删除地点失败", zap.Int("id", id), zap.Error(err))
		return err
	}

	s.notify(ctx, fmt.Sprintf("Location %d deleted", id))
	return nil
}

// ── 内部辅助方法 ──

func (s *locationService) notify(ctx context.Context, message string) {
	if !s.cfg.Feature.NotifyLocationChanges {
		return
	}
	emitBestEffort(ctx, s.notifier, s.logger, message, s.cfg.Feature.NotificationUserID)
}

func buildLocation(req *dto.LocationRequest) (*model.Location, error) {
	name, err := requireText("name", req.Name)
	if err != nil {
		return nil, err
	}
	building, err := requireText("building", req.Building)
	if err != nil {
		return nil, err
	}
	floor, err := requireText("floor", req.Floor)
	if err != nil {
		return nil, err
	}
	accessible, err := requireBool("accessible", req.Accessible)
	if err != nil {
		return nil, err
	}

	return &model.Location{
		Name:       name,
		Building:   building,
		Floor:      floor,
		Accessible: model.Bool(accessible),
	}, nil
}

func toLocationResponse(loc *model.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:         loc.ID,
		Name:       loc.Name,
		Building:   loc.Building,
		Floor:      loc.Floor,
		Accessible: bool(loc.Accessible),
	}
}

// emitBestEffort 变更已落盘后再写通知；通知失败只记日志，不回滚也不影响本次请求结果
func emitBestEffort(ctx context.Context, notifier NotificationService, logger *zap.Logger, message string, userID int) {
	if err := notifier.Emit(ctx, message, userID); err != nil {
		logger.Warn("变更已保存，但通知写入失败", zap.String("message", message), zap.Error(err))
	}
}
