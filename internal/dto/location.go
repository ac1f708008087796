package dto

// ── 地点模块 DTO ──

// LocationRequest 创建/更新地点请求
// 更新时同样要求提交全部字段（整行覆盖）
type LocationRequest struct {
	Name       string `json:"name"       binding:"omitempty,max=100"`
	Building   string `json:"building"   binding:"omitempty,max=100"`
	Floor      string `json:"floor"      binding:"omitempty,max=20"`
	Accessible *bool  `json:"accessible"`
}

// LocationResponse 地点信息响应
type LocationResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Building   string `json:"building"`
	Floor      string `json:"floor"`
	Accessible bool   `json:"accessible"`
}
