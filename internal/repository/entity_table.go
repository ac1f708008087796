package repository

import (
	"context"

	"campus-console/pkg/csvstore"
)

// entityTable 按 id 增删改查的通用实现，地点与路线共用
type entityTable[T csvstore.Record] struct {
	table *csvstore.Table[T]
}

func (e *entityTable[T]) list(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.table.Load()
}

func (e *entityTable[T]) get(ctx context.Context, id int) (T, error) {
	var zero T
	rows, err := e.list(ctx)
	if err != nil {
		return zero, err
	}
	for _, r := range rows {
		if r.RecordID() == id {
			return r, nil
		}
	}
	return zero, ErrRecordNotFound
}

// create 分配新 id 并追加；build 根据 id 构造完整的行
func (e *entityTable[T]) create(ctx context.Context, build func(id int) T) (T, error) {
	var created T
	if err := ctx.Err(); err != nil {
		return created, err
	}
	err := e.table.Mutate(func(rows []T) ([]T, error) {
		created = build(csvstore.NextID(rows))
		return append(rows, created), nil
	})
	return created, err
}

// update 按 id 整行替换；id 不存在时返回 ErrRecordNotFound 且不写文件
func (e *entityTable[T]) update(ctx context.Context, row T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.table.Mutate(func(rows []T) ([]T, error) {
		for i := range rows {
			if rows[i].RecordID() == row.RecordID() {
				rows[i] = row
				return rows, nil
			}
		}
		return nil, ErrRecordNotFound
	})
}

// delete 过滤掉指定 id 的行；id 不存在时静默成功
func (e *entityTable[T]) delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.table.Mutate(func(rows []T) ([]T, error) {
		kept := rows[:0]
		for _, r := range rows {
			if r.RecordID() != id {
				kept = append(kept, r)
			}
		}
		return kept, nil
	})
}
