package repository

import (
	"context"

	"campus-console/internal/model"
	"campus-console/pkg/csvstore"
)

// UserRepository 用户数据访问接口（users.csv 由外部维护，只读）
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// userRepo UserRepository 的 CSV 实现
type userRepo struct {
	table *csvstore.Table[model.User]
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(table *csvstore.Table[model.User]) UserRepository {
	return &userRepo{table: table}
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrRecordNotFound
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.table.Load()
}
