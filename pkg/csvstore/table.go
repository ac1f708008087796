// Package csvstore 实现以单个 CSV 文件为载体的整表存储。
//
// 每张表对应一个文件：首行为表头，之后每行一条记录。所有写操作都遵循
// "读取整表 → 内存修改 → 覆盖写回" 的流程，由 Mutate 统一完成。
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/jszwec/csvutil"

	pkgerrors "campus-console/pkg/errors"
)

// Record 可存入 Table 的行类型，必须暴露整型主键
type Record interface {
	RecordID() int
}

// Table 单个 CSV 文件的整表读写封装
//
// 同一进程内对同一 Table 的 Mutate 调用串行执行；多个进程共享
// 同一文件时仍然是最后写入者覆盖（无跨进程锁）。
type Table[T Record] struct {
	path string
	mu   sync.Mutex
}

// NewTable 创建 Table，文件可以尚不存在
func NewTable[T Record](path string) *Table[T] {
	return &Table[T]{path: path}
}

// Path 返回数据文件路径
func (t *Table[T]) Path() string { return t.path }

// Load 读取整表
// 文件不存在或为空时返回空表（nil 切片, nil 错误）
func (t *Table[T]) Load() ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load()
}

// Save 用 rows 覆盖整张表
func (t *Table[T]) Save(rows []T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.save(rows)
}

// Mutate 在锁内完成一次读-改-写
// fn 返回错误时不写回，表保持原样
func (t *Table[T]) Mutate(fn func(rows []T) ([]T, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.load()
	if err != nil {
		return err
	}

	next, err := fn(rows)
	if err != nil {
		return err
	}

	return t.save(next)
}

// NextID 自增主键：max(id)+1，空表为 1；删除后的 id 不会复用
func NextID[T Record](rows []T) int {
	maxID := 0
	for _, r := range rows {
		if id := r.RecordID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func (t *Table[T]) load() ([]T, error) {
	f, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: 打开 %s: %v", pkgerrors.ErrPersistence, t.path, err)
	}
	defer f.Close()

	dec, err := csvutil.NewDecoder(csv.NewReader(f))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: 读取表头 %s: %v", pkgerrors.ErrPersistence, t.path, err)
	}

	var rows []T
	if err := dec.Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: 解析 %s: %v", pkgerrors.ErrPersistence, t.path, err)
	}
	return rows, nil
}

// save 先写临时文件再 rename，写到一半失败不会破坏原文件
func (t *Table[T]) save(rows []T) error {
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: 创建目录 %s: %v", pkgerrors.ErrPersistence, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: 创建临时文件: %v", pkgerrors.ErrPersistence, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // rename 成功后为空操作

	w := csv.NewWriter(tmp)
	enc := csvutil.NewEncoder(w)

	var encErr error
	if len(rows) == 0 {
		var zero T
		encErr = enc.EncodeHeader(zero)
	} else {
		encErr = enc.Encode(rows)
	}
	if encErr != nil {
		tmp.Close()
		return fmt.Errorf("%w: 编码 %s: %v", pkgerrors.ErrPersistence, t.path, encErr)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: 写入 %s: %v", pkgerrors.ErrPersistence, t.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: 关闭临时文件: %v", pkgerrors.ErrPersistence, err)
	}

	if err := os.Rename(tmpName, t.path); err != nil {
		return fmt.Errorf("%w: 替换 %s: %v", pkgerrors.ErrPersistence, t.path, err)
	}
	return nil
}
