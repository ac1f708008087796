package errors

import "errors"

// ErrPersistence 存储层读写失败（CSV 文件无法读取、写入或解析）
// 由 csvstore 包装后向上透传，Handler 层统一映射为 500
var ErrPersistence = errors.New("数据文件读写失败")
