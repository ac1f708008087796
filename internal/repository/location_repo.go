package repository

import (
	"context"

	"campus-console/internal/model"
	"campus-console/pkg/csvstore"
)

// LocationRepository 地点数据访问接口
type LocationRepository interface {
	Create(ctx context.Context, loc *model.Location) error
	GetByID(ctx context.Context, id int) (*model.Location, error)
	List(ctx context.Context) ([]model.Location, error)
	Update(ctx context.Context, loc *model.Location) error
	Delete(ctx context.Context, id int) error
}

type locationRepo struct {
	entityTable[model.Location]
}

// NewLocationRepo 创建 LocationRepository 实例
func NewLocationRepo(table *csvstore.Table[model.Location]) LocationRepository {
	return &locationRepo{entityTable[model.Location]{table: table}}
}

// Create 忽略 loc.ID，写入后回填分配到的 id
func (r *locationRepo) Create(ctx context.Context, loc *model.Location) error {
	created, err := r.create(ctx, func(id int) model.Location {
		row := *loc
		row.ID = id
		return row
	})
	if err != nil {
		return err
	}
	*loc = created
	return nil
}

func (r *locationRepo) GetByID(ctx context.Context, id int) (*model.Location, error) {
	loc, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	return r.list(ctx)
}

func (r *locationRepo) Update(ctx context.Context, loc *model.Location) error {
	return r.update(ctx, *loc)
}

func (r *locationRepo) Delete(ctx context.Context, id int) error {
	return r.delete(ctx, id)
}
