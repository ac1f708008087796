package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation 必填字段缺失或取值非法；具体字段通过 %w 包装携带
var ErrValidation = errors.New("参数校验失败")

// requireText 去除首尾空白后不能为空
func requireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%w: %s 不能为空", ErrValidation, field)
	}
	return v, nil
}

// requireBool 布尔字段必须显式给出
func requireBool(field string, value *bool) (bool, error) {
	if value == nil {
		return false, fmt.Errorf("%w: %s 不能为空", ErrValidation, field)
	}
	return *value, nil
}

// requireDistance 距离必须给出且不能为负数
func requireDistance(field string, value *float64) (float64, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: %s 不能为空", ErrValidation, field)
	}
	if *value < 0 || *value != *value {
		return 0, fmt.Errorf("%w: %s 必须为非负数", ErrValidation, field)
	}
	return *value, nil
}
