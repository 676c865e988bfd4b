package model

// 各部门的规范化记录。外部表格的单元格是松散类型的，
// 归一化后按部门拆成强类型变体；数值字段解析失败时为 0。

// FloorRecord 车间日志记录（一层 / 地下室共用）
type FloorRecord struct {
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Supervisor string  `json:"supervisor"`
	Link       string  `json:"link"`
	Comment    string  `json:"comment"`
	Production float64 `json:"production"` // 当日产量
	Boxes      float64 `json:"boxes"`      // 当日箱数
}

// QualityRecord 质检日志记录
type QualityRecord struct {
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Supervisor string  `json:"supervisor"`
	Link       string  `json:"link"`
	Comment    string  `json:"comment"`
	Received   float64 `json:"received"`
	OK         float64 `json:"ok"`
	Rejected   float64 `json:"rejected"`
}

// StockRecord 库存日志记录
type StockRecord struct {
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Supervisor string  `json:"supervisor"`
	Link       string  `json:"link"`
	Comment    string  `json:"comment"`
	ItemsAdded float64 `json:"itemsAdded"`
}

// AttendanceRecord 考勤日志记录
type AttendanceRecord struct {
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Supervisor string  `json:"supervisor"`
	Link       string  `json:"link"`
	Comment    string  `json:"comment"`
	Present    float64 `json:"present"`
	Absent     float64 `json:"absent"`
}

// AnalyticsData 一次快照抓取得到的全部规范化记录
// Floor 已包含地下室记录（同结构，由抓取方合并）
type AnalyticsData struct {
	Floor      []FloorRecord
	Quality    []QualityRecord
	Stock      []StockRecord
	Attendance []AttendanceRecord
}
