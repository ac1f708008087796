package dto

// ── 路线模块 DTO ──

// RouteRequest 创建/更新路线请求（更新同样要求全部字段）
type RouteRequest struct {
	StartLocation string   `json:"start_location" binding:"omitempty,max=100"`
	EndLocation   string   `json:"end_location"   binding:"omitempty,max=100"`
	DistanceM     *float64 `json:"distance_m"`
	Accessible    *bool    `json:"accessible"`
}

// ShortestRouteRequest 最短路线查询参数
type ShortestRouteRequest struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

// RouteResponse 路线信息响应
type RouteResponse struct {
	ID            int      `json:"id"`
	StartLocation string   `json:"start_location"`
	EndLocation   string   `json:"end_location"`
	DistanceM     *float64 `json:"distance_m"` // 数据文件中为空时返回 null
	Accessible    bool     `json:"accessible"`
}
