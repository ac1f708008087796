package repository

import (
	"context"

	"campus-console/internal/model"
	"campus-console/pkg/csvstore"
)

// RouteRepository 路线数据访问接口
type RouteRepository interface {
	Create(ctx context.Context, route *model.Route) error
	GetByID(ctx context.Context, id int) (*model.Route, error)
	List(ctx context.Context) ([]model.Route, error)
	Update(ctx context.Context, route *model.Route) error
	Delete(ctx context.Context, id int) error
}

type routeRepo struct {
	entityTable[model.Route]
}

// NewRouteRepo 创建 RouteRepository 实例
func NewRouteRepo(table *csvstore.Table[model.Route]) RouteRepository {
	return &routeRepo{entityTable[model.Route]{table: table}}
}

func (r *routeRepo) Create(ctx context.Context, route *model.Route) error {
	created, err := r.create(ctx, func(id int) model.Route {
		row := *route
		row.ID = id
		return row
	})
	if err != nil {
		return err
	}
	*route = created
	return nil
}

func (r *routeRepo) GetByID(ctx context.Context, id int) (*model.Route, error) {
	route, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &route, nil
}

// List 按文件中的行顺序返回，最短路线查询依赖该顺序决定并列时的取舍
func (r *routeRepo) List(ctx context.Context) ([]model.Route, error) {
	return r.list(ctx)
}

func (r *routeRepo) Update(ctx context.Context, route *model.Route) error {
	return r.update(ctx, *route)
}

func (r *routeRepo) Delete(ctx context.Context, id int) error {
	return r.delete(ctx, id)
}
