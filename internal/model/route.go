package model

// Route 两个地点之间的路线，对应 routes.csv
// 查询时按无向边处理：(a,b) 与 (b,a) 等价；允许存在平行边。
type Route struct {
	ID            int       `csv:"id"             json:"id"`
	StartLocation string    `csv:"start_location" json:"start_location"`
	EndLocation   string    `csv:"end_location"   json:"end_location"`
	DistanceM     NullFloat `csv:"distance_m"     json:"distance_m"`
	Accessible    Bool      `csv:"accessible"     json:"accessible"`
}

// RecordID 实现 csvstore.Record
func (r Route) RecordID() int { return r.ID }

// Connects 判断路线是否连接 a 与 b（不区分方向）
func (r Route) Connects(a, b string) bool {
	return (r.StartLocation == a && r.EndLocation == b) ||
		(r.StartLocation == b && r.EndLocation == a)
}

// RoutesFile 数据文件名
const RoutesFile = "routes.csv"
