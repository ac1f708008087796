package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"campus-console/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置下载响应头后写出；
// 列顺序与 CSV 数据文件一致。
type ExportService interface {
	ExportLocations(ctx context.Context) (*bytes.Buffer, string, error)
	ExportRoutes(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportLocations(ctx context.Context) (*bytes.Buffer, string, error) {
	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("导出地点时读取失败", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(locations))
	for _, l := range locations {
		rows = append(rows, []interface{}{l.ID, l.Name, l.Building, l.Floor, yesNo(bool(l.Accessible))})
	}

	buf, err := s.writeSheet("Locations", []string{"ID", "Name", "Building", "Floor", "Accessible"}, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, "locations.xlsx", nil
}

func (s *exportService) ExportRoutes(ctx context.Context) (*bytes.Buffer, string, error) {
	routes, err := s.repo.Route.List(ctx)
	if err != nil {
		s.logger.Error("导出路线时读取失败", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(routes))
	for _, r := range routes {
		var distance interface{} = "-"
		if r.DistanceM.Valid {
			distance = r.DistanceM.Float64
		}
		rows = append(rows, []interface{}{r.ID, r.StartLocation, r.EndLocation, distance, yesNo(bool(r.Accessible))})
	}

	buf, err := s.writeSheet("Routes", []string{"ID", "Start", "End", "Distance (m)", "Accessible"}, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, "routes.xlsx", nil
}

// writeSheet 生成单 Sheet 工作簿：第 1 行表头，之后逐行写入
func (s *exportService) writeSheet(sheetName string, header []string, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9EAD3"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range header {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, cell(colName(0), 1), cell(colName(len(header)-1), 1), headerStyle)
	f.SetColWidth(sheetName, colName(0), colName(0), 8)
	f.SetColWidth(sheetName, colName(1), colName(len(header)-1), 20)

	for r, row := range rows {
		for c, v := range row {
			f.SetCellValue(sheetName, cell(colName(c), r+2), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	return buf, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
