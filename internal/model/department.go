package model

// Department 部门定义
// StartCol 为主表（Sheet1）中该部门数据块的起始列（0 基，列 A 为日期）
type Department struct {
	ID       string `json:"id"`       // 部门ID
	Name     string `json:"name"`     // 部门显示名称
	StartCol int    `json:"startCol"` // 主表起始列
}

// VerifyDeptID 核对部门ID（仅做核对，不参与排行榜）
const VerifyDeptID = "it_check"

// Departments 返回全部部门定义
// 主表每个部门占 4 列：完成标记 / 负责人 / 提交时间 / 备注
func Departments() []Department {
	return []Department{
		{ID: "floor", Name: "Production (First Floor)", StartCol: 1},
		{ID: "basement", Name: "Production (Basement)", StartCol: 5},
		{ID: "quality", Name: "Quality Check", StartCol: 9},
		{ID: "stock", Name: "Stock Availability", StartCol: 13},
		{ID: "attendance", Name: "Attendance", StartCol: 17},
		{ID: VerifyDeptID, Name: "IT Verification", StartCol: 21},
	}
}

// FindDepartment 按ID查找部门
func FindDepartment(id string) (Department, bool) {
	for _, d := range Departments() {
		if d.ID == id {
			return d, true
		}
	}
	return Department{}, false
}

// LogSchema 日志表定义：工作表名 + 有序字段名（按列位置对应）
type LogSchema struct {
	Tab    string
	Fields []string
}

// 各部门日志表的字段顺序，与外部表格的列顺序一致
var (
	FloorSchema = LogSchema{
		Tab:    "DB_Floor",
		Fields: []string{"date", "time", "supervisor", "link", "comment", "production", "boxes"},
	}
	BasementSchema = LogSchema{
		Tab:    "DB_Basement",
		Fields: FloorSchema.Fields, // 地下室与一层共用车间日志结构
	}
	QualitySchema = LogSchema{
		Tab:    "DB_Quality",
		Fields: []string{"date", "time", "supervisor", "link", "comment", "received", "ok", "rejected"},
	}
	StockSchema = LogSchema{
		Tab:    "DB_Stock",
		Fields: []string{"date", "time", "supervisor", "link", "comment", "itemsAdded"},
	}
	AttendanceSchema = LogSchema{
		Tab:    "DB_Attendance",
		Fields: []string{"date", "time", "supervisor", "link", "comment", "present", "absent"},
	}
)

// MasterTab 主表名称：每天一行，按部门分列块记录打卡状态
const MasterTab = "Sheet1"
