package dto

// BuildingCount 单栋楼的地点统计
type BuildingCount struct {
	Building   string `json:"building"`
	Locations  int    `json:"locations"`
	Accessible int    `json:"accessible"`
}

// ReportSummary 概览统计
type ReportSummary struct {
	TotalLocations      int             `json:"total_locations"`
	AccessibleLocations int             `json:"accessible_locations"`
	Buildings           []BuildingCount `json:"buildings"`
	TotalRoutes         int             `json:"total_routes"`
	AccessibleRoutes    int             `json:"accessible_routes"`
	TotalDistanceM      float64         `json:"total_distance_m"`
	AverageDistanceM    float64         `json:"average_distance_m"` // 仅统计有距离的路线
	Notifications       int             `json:"notifications"`
}
