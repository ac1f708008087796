package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"campus-console/config"
	"campus-console/internal/dto"
	"campus-console/internal/model"
	"campus-console/internal/repository"
)

// ── 路线模块业务错误 ──

var (
	ErrRouteNotFound  = errors.New("路线不存在")
	ErrNoRouteBetween = errors.New("两地之间没有直达路线")
)

// RouteService 路线业务接口
//
// FindShortest 只查直达边：a、b 之间没有一条直接记录时即返回
// ErrNoRouteBetween，即使经由其他地点可以到达。
type RouteService interface {
	Create(ctx context.Context, req *dto.RouteRequest) (*dto.RouteResponse, error)
	GetByID(ctx context.Context, id int) (*dto.RouteResponse, error)
	List(ctx context.Context) ([]dto.RouteResponse, error)
	Update(ctx context.Context, id int, req *dto.RouteRequest) (*dto.RouteResponse, error)
	Delete(ctx context.Context, id int) error
	FindShortest(ctx context.Context, start, end string) (*dto.RouteResponse, error)
	ListEndpoints(ctx context.Context) ([]string, error)
}

type routeService struct {
	cfg      *config.Config
	repo     *repository.Repository
	notifier NotificationService
	logger   *zap.Logger
}

// NewRouteService 创建 RouteService 实例
func NewRouteService(cfg *config.Config, repo *repository.Repository, notifier NotificationService, logger *zap.Logger) RouteService {
	return &routeService{cfg: cfg, repo: repo, notifier: notifier, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *routeService) Create(ctx context.Context, req *dto.RouteRequest) (*dto.RouteResponse, error) {
	route, err := buildRoute(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Route.Create(ctx, route); err != nil {
		s.logger.Error("创建路线失败", zap.Error(err))
		return nil, err
	}

	s.notify(ctx, fmt.Sprintf("New route '%s → %s' added", route.StartLocation, route.EndLocation))
	return toRouteResponse(route), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *routeService) GetByID(ctx context.Context, id int) (*dto.RouteResponse, error) {
	route, err := s.repo.Route.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		s.logger.Error("查询路线失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	return toRouteResponse(route), nil
}

// ────────────────────── List ──────────────────────

func (s *routeService) List(ctx context.Context) ([]dto.RouteResponse, error) {
	routes, err := s.repo.Route.List(ctx)
	if err != nil {
		s.logger.Error("列出路线失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RouteResponse, 0, len(routes))
	for i := range routes {
		result = append(result, *toRouteResponse(&routes[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *routeService) Update(ctx context.Context, id int, req *dto.RouteRequest) (*dto.RouteResponse, error) {
	route, err := buildRoute(req)
	if err != nil {
		return nil, err
	}
	route.ID = id

	if err := s.repo.Route.Update(ctx, route); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		s.logger.Error("更新路线失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	s.notify(ctx, fmt.Sprintf("Route '%s → %s' updated", route.StartLocation, route.EndLocation))
	return toRouteResponse(route), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 幂等：id 不存在时静默成功，但仍会写一条删除通知
func (s *routeService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Route.Delete(ctx, id); err != nil {
		s.logger.Error("删除路线失败", zap.Int("id", id), zap.Error(err))
		return err
	}

	s.notify(ctx, fmt.Sprintf("Route %d deleted", id))
	return nil
}

// ────────────────────── FindShortest ──────────────────────

func (s *routeService) FindShortest(ctx context.Context, start, end string) (*dto.RouteResponse, error) {
	// 写入时地点名已去除首尾空白，查询条件需保持一致
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return nil, fmt.Errorf("%w: start 与 end 均不能为空", ErrValidation)
	}

	routes, err := s.repo.Route.List(ctx)
	if err != nil {
		s.logger.Error("列出路线失败", zap.Error(err))
		return nil, err
	}

	best, ok := shortestDirect(routes, start, end)
	if !ok {
		return nil, ErrNoRouteBetween
	}
	return toRouteResponse(best), nil
}

// shortestDirect 在所有连接 start、end 的直达记录中取距离最小者
// 并列时取表中靠前的一条；距离为空的记录只在没有任何有效距离时才会被选中
func shortestDirect(routes []model.Route, start, end string) (*model.Route, bool) {
	var best *model.Route
	for i := range routes {
		r := &routes[i]
		if !r.Connects(start, end) {
			continue
		}
		switch {
		case best == nil:
			best = r
		case !r.DistanceM.Valid:
		case !best.DistanceM.Valid || r.DistanceM.Float64 < best.DistanceM.Float64:
			best = r
		}
	}
	return best, best != nil
}

// ────────────────────── ListEndpoints ──────────────────────

// ListEndpoints 路线中出现过的全部地点名，去重后按字典序排列（供查询下拉框使用）
func (s *routeService) ListEndpoints(ctx context.Context) ([]string, error) {
	routes, err := s.repo.Route.List(ctx)
	if err != nil {
		s.logger.Error("列出路线失败", zap.Error(err))
		return nil, err
	}

	seen := make(map[string]struct{}, len(routes)*2)
	names := make([]string, 0, len(routes)*2)
	for _, r := range routes {
		for _, name := range []string{r.StartLocation, r.EndLocation} {
			if _, ok := seen[name]; ok || name == "" {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ── 内部辅助方法 ──

func (s *routeService) notify(ctx context.Context, message string) {
	emitBestEffort(ctx, s.notifier, s.logger, message, s.cfg.Feature.NotificationUserID)
}

func buildRoute(req *dto.RouteRequest) (*model.Route, error) {
	start, err := requireText("start_location", req.StartLocation)
	if err != nil {
		return nil, err
	}
	end, err := requireText("end_location", req.EndLocation)
	if err != nil {
		return nil, err
	}
	distance, err := requireDistance("distance_m", req.DistanceM)
	if err != nil {
		return nil, err
	}
	accessible, err := requireBool("accessible", req.Accessible)
	if err != nil {
		return nil, err
	}

	return &model.Route{
		StartLocation: start,
		EndLocation:   end,
		DistanceM:     model.NewNullFloat(distance),
		Accessible:    model.Bool(accessible),
	}, nil
}

func toRouteResponse(r *model.Route) *dto.RouteResponse {
	resp := &dto.RouteResponse{
		ID:            r.ID,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		Accessible:    bool(r.Accessible),
	}
	if r.DistanceM.Valid {
		d := r.DistanceM.Float64
		resp.DistanceM = &d
	}
	return resp
}
