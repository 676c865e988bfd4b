package analytics

import (
	"fmt"
	"math"

	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
)

// KPISet 当日核心指标
type KPISet struct {
	TotalProduction float64 `json:"totalProduction"` // 当日总产量
	Efficiency      int     `json:"efficiency"`      // 效率（%）
	RejectionRate   string  `json:"rejectionRate"`   // 不良率，1 位小数
	QualityScore    int     `json:"qualityScore"`    // 质量得分
	TotalBoxes      float64 `json:"totalBoxes"`      // 当日总箱数
	StaffPresent    float64 `json:"staffPresent"`    // 出勤人数
}

// DefaultKPISet 无数据时的默认指标
// 无质检记录默认满分 100、不良率 "0.0"，这是明确的业务口径而非疏漏
func DefaultKPISet() KPISet {
	return KPISet{
		RejectionRate: "0.0",
		QualityScore:  100,
	}
}

// KPIs 汇总当日指标
// today 与记录的 date 字段做字符串相等比较；所有除法都有零分母保护，
// 输入为空时返回默认指标，绝不报错
func (e *Engine) KPIs(data model.AnalyticsData, today string) KPISet {
	var totalProduction, totalBoxes float64
	for _, r := range data.Floor {
		if r.Date != today {
			continue
		}
		totalProduction += r.Production
		totalBoxes += r.Boxes
	}

	efficiency := 0
	if totalBoxes > 0 {
		efficiency = int(math.Round(totalProduction / (totalBoxes * e.cfg.StandardUnitsPerBox) * 100))
	}

	var totalOK, totalRejected float64
	for _, r := range data.Quality {
		if r.Date != today {
			continue
		}
		totalOK += r.OK
		totalRejected += r.Rejected
	}
	qTotal := totalOK + totalRejected

	rejectionRate := 0.0
	qualityScore := 100
	if qTotal > 0 {
		rejectionRate = totalRejected / qTotal * 100
		qualityScore = int(math.Round((totalOK - totalRejected*1.5) / qTotal * 100))
		if qualityScore < 0 {
			qualityScore = 0
		}
	}

	var staffPresent float64
	for _, r := range data.Attendance {
		if r.Date != today {
			continue
		}
		staffPresent += r.Present
	}

	return KPISet{
		TotalProduction: totalProduction,
		Efficiency:      efficiency,
		RejectionRate:   fmt.Sprintf("%.1f", rejectionRate),
		QualityScore:    qualityScore,
		TotalBoxes:      totalBoxes,
		StaffPresent:    staffPresent,
	}
}
