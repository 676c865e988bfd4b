package sheets

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
)

// Source 打卡工作簿数据源
// 对应外部表格的本地同步副本：按表名批量读原始行，引擎只消费 [][]string。
// 假定单写者追加为主，写操作串行化即可
type Source struct {
	path string
	mu   sync.Mutex
}

// NewSource 创建数据源
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path 工作簿路径
func (s *Source) Path() string {
	return s.path
}

// FetchRows 读取指定工作表的全部原始行
func (s *Source) FetchRows(tab string) ([][]string, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(tab)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", tab, err)
	}
	return rows, nil
}

// RawLogs 各部门日志表的原始行
type RawLogs struct {
	Floor      [][]string
	Basement   [][]string
	Quality    [][]string
	Stock      [][]string
	Attendance [][]string
}

// FetchLogs 一次打开工作簿，批量读取全部日志表
// DB_Basement 可能不存在（老工作簿没有地下室），缺失时按空处理
func (s *Source) FetchLogs() (*RawLogs, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	logs := &RawLogs{}

	if logs.Floor, err = f.GetRows(model.FloorSchema.Tab); err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", model.FloorSchema.Tab, err)
	}
	if rows, err := f.GetRows(model.BasementSchema.Tab); err == nil {
		logs.Basement = rows
	}
	if logs.Quality, err = f.GetRows(model.QualitySchema.Tab); err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", model.QualitySchema.Tab, err)
	}
	if logs.Stock, err = f.GetRows(model.StockSchema.Tab); err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", model.StockSchema.Tab, err)
	}
	if logs.Attendance, err = f.GetRows(model.AttendanceSchema.Tab); err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", model.AttendanceSchema.Tab, err)
	}

	return logs, nil
}

// MasterRows 读取主表全部日行
func (s *Source) MasterRows() ([][]string, error) {
	return s.FetchRows(model.MasterTab)
}

// MasterRow 主表中的一行
type MasterRow struct {
	Index int      // 1 基行号，用于回写
	Cells []string
}

// TodayRow 在主表中按日期精确查找当日行，找不到返回 nil
func (s *Source) TodayRow(dateStr string) (*MasterRow, error) {
	rows, err := s.MasterRows()
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) > 0 && row[0] == dateStr {
			return &MasterRow{Index: i + 1, Cells: row}, nil
		}
	}
	return nil, nil
}

// CreateTodayRow 在主表末尾追加当日行（只写日期列，其余列等待各部门打卡）
func (s *Source) CreateTodayRow(dateStr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(model.MasterTab)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", model.MasterTab, err)
	}

	cell := fmt.Sprintf("A%d", len(rows)+1)
	if err := f.SetSheetRow(model.MasterTab, cell, &[]interface{}{dateStr}); err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// UpdateDepartment 回写某部门的 4 列数据块（完成标记/负责人/时间/备注）
// rowIndex 为 1 基行号，startCol 为 0 基列号
func (s *Source) UpdateDepartment(rowIndex, startCol int, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	cell, err := excelize.CoordinatesToCellName(startCol+1, rowIndex)
	if err != nil {
		return fmt.Errorf("invalid cell position: %w", err)
	}

	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(model.MasterTab, cell, &row); err != nil {
		return fmt.Errorf("failed to update row: %w", err)
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// ReadLinkedRows 读取负责人提交的关联工作簿（第一个工作表）
// 打卡通过后这些行会被归档
func ReadLinkedRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open linked workbook: %w", err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return [][]string{}, nil
	}

	rows, err := f.GetRows(sheetList[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read linked sheet: %w", err)
	}
	return rows, nil
}

// CheckSheetForToday 校验关联工作簿里是否已有当日数据
// 与排行榜一致的宽松口径：第一列任意单元格包含当日"几号"数字即通过
func CheckSheetForToday(path, todayDay string) (bool, error) {
	rows, err := ReadLinkedRows(path)
	if err != nil {
		return false, err
	}

	for _, row := range rows {
		if len(row) > 0 && todayDay != "" && strings.Contains(row[0], todayDay) {
			return true, nil
		}
	}
	return false, nil
}
