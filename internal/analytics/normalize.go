package analytics

import (
	"math"
	"strconv"
	"strings"

	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
)

// Cell 规范化后的单元格：数值或修剪后的字符串
type Cell struct {
	Text    string
	Num     float64
	Numeric bool
}

// Record 一行规范化记录：字段名 -> 单元格
type Record map[string]Cell

// Num 读取数值字段，缺失或非数值时为 0
func (r Record) Num(field string) float64 {
	c, ok := r[field]
	if !ok || !c.Numeric {
		return 0
	}
	return c.Num
}

// Text 读取文本字段
func (r Record) Text(field string) string {
	return r[field].Text
}

// CoerceCell 单元格类型归一化
// 去掉千分位逗号并修剪后能解析为有限浮点数、且不含 "/" 的视为数值；
// 日期永远不会被误读为数字。其余一律保留为修剪后的字符串。
func CoerceCell(raw string) Cell {
	text := strings.TrimSpace(raw)
	clean := strings.ReplaceAll(text, ",", "")
	if clean == "" || strings.Contains(clean, "/") {
		return Cell{Text: text}
	}
	num, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return Cell{Text: text}
	}
	return Cell{Text: text, Num: num, Numeric: true}
}

// ParseSheet 将原始表格行按位置映射为规范化记录
// date 字段为空或不含日期分隔符 "/" 的行整行丢弃（占位行 / 表头行），不报错
func ParseSheet(rows [][]string, fields []string) []Record {
	records := make([]Record, 0, len(rows))

	for _, row := range rows {
		rec := make(Record, len(fields))
		for i, field := range fields {
			raw := ""
			if i < len(row) {
				raw = row[i]
			}
			rec[field] = CoerceCell(raw)
		}

		if !strings.Contains(rec.Text("date"), "/") {
			continue
		}
		records = append(records, rec)
	}

	return records
}

// ParseFloorRows 解析车间日志（一层 / 地下室同结构）
func ParseFloorRows(rows [][]string) []model.FloorRecord {
	recs := ParseSheet(rows, model.FloorSchema.Fields)
	out := make([]model.FloorRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.FloorRecord{
			Date:       r.Text("date"),
			Time:       r.Text("time"),
			Supervisor: r.Text("supervisor"),
			Link:       r.Text("link"),
			Comment:    r.Text("comment"),
			Production: r.Num("production"),
			Boxes:      r.Num("boxes"),
		})
	}
	return out
}

// ParseQualityRows 解析质检日志
func ParseQualityRows(rows [][]string) []model.QualityRecord {
	recs := ParseSheet(rows, model.QualitySchema.Fields)
	out := make([]model.QualityRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.QualityRecord{
			Date:       r.Text("date"),
			Time:       r.Text("time"),
			Supervisor: r.Text("supervisor"),
			Link:       r.Text("link"),
			Comment:    r.Text("comment"),
			Received:   r.Num("received"),
			OK:         r.Num("ok"),
			Rejected:   r.Num("rejected"),
		})
	}
	return out
}

// ParseStockRows 解析库存日志
func ParseStockRows(rows [][]string) []model.StockRecord {
	recs := ParseSheet(rows, model.StockSchema.Fields)
	out := make([]model.StockRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.StockRecord{
			Date:       r.Text("date"),
			Time:       r.Text("time"),
			Supervisor: r.Text("supervisor"),
			Link:       r.Text("link"),
			Comment:    r.Text("comment"),
			ItemsAdded: r.Num("itemsAdded"),
		})
	}
	return out
}

// ParseAttendanceRows 解析考勤日志
func ParseAttendanceRows(rows [][]string) []model.AttendanceRecord {
	recs := ParseSheet(rows, model.AttendanceSchema.Fields)
	out := make([]model.AttendanceRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, model.AttendanceRecord{
			Date:       r.Text("date"),
			Time:       r.Text("time"),
			Supervisor: r.Text("supervisor"),
			Link:       r.Text("link"),
			Comment:    r.Text("comment"),
			Present:    r.Num("present"),
			Absent:     r.Num("absent"),
		})
	}
	return out
}
