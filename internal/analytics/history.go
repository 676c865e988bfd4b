package analytics

import (
	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
)

// HistoryPoint 单日产量汇总
type HistoryPoint struct {
	Date       string  `json:"date"`
	Production float64 `json:"production"`
}

// dailyProduction 按日期字符串聚合产量，保持日期首次出现的顺序
// 日期只做字符串相等，不做日历解析：同一天的两种写法算两天
func dailyProduction(floor []model.FloorRecord) []HistoryPoint {
	order := make([]string, 0)
	totals := make(map[string]float64)

	for _, r := range floor {
		if r.Date == "" {
			continue
		}
		if _, ok := totals[r.Date]; !ok {
			order = append(order, r.Date)
		}
		totals[r.Date] += r.Production
	}

	points := make([]HistoryPoint, 0, len(order))
	for _, date := range order {
		points = append(points, HistoryPoint{Date: date, Production: totals[date]})
	}
	return points
}

// History 产量历史曲线
// 取按出现顺序的末尾 N 条（固定条数窗口，不是按日历回看 N 天）
func (e *Engine) History(floor []model.FloorRecord) []HistoryPoint {
	points := dailyProduction(floor)
	if len(points) > e.cfg.HistoryDays {
		points = points[len(points)-e.cfg.HistoryDays:]
	}
	return points
}
