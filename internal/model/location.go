package model

// Location 校园地点，对应 locations.csv
type Location struct {
	ID         int    `csv:"id"         json:"id"`
	Name       string `csv:"name"       json:"name"`
	Building   string `csv:"building"   json:"building"`
	Floor      string `csv:"floor"      json:"floor"`
	Accessible Bool   `csv:"accessible" json:"accessible"`
}

// RecordID 实现 csvstore.Record
func (l Location) RecordID() int { return l.ID }

// LocationsFile 数据文件名
const LocationsFile = "locations.csv"
