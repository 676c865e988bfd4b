package analytics

import (
	"math"

	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
)

// Anomaly 统计异常
type Anomaly struct {
	Dept     string  `json:"dept"`
	Metric   string  `json:"metric"`
	Value    float64 `json:"value"`
	Average  float64 `json:"average"`  // 历史日均（取整）
	Severity string  `json:"severity"` // medium / high
}

// DetectAnomalies 基于 z 分数检测当日产量异常
// 历史不足 3 个不同日期时不做判断；标准差按总体口径（除以 N）计算，
// 为 0 时按 1 处理。只检测产量骤降，没有超产类告警。
// 若当日已写入日志，则当日值也参与自身基线，这是沿用的既有口径。
func (e *Engine) DetectAnomalies(floor []model.FloorRecord, todayValue float64) []Anomaly {
	anomalies := make([]Anomaly, 0, 1)

	points := dailyProduction(floor)
	if len(points) < 3 {
		return anomalies
	}

	var sum float64
	for _, p := range points {
		sum += p.Production
	}
	mean := sum / float64(len(points))

	var variance float64
	for _, p := range points {
		variance += (p.Production - mean) * (p.Production - mean)
	}
	variance /= float64(len(points))

	stdDev := math.Sqrt(variance)
	if stdDev == 0 {
		stdDev = 1
	}

	zScore := (todayValue - mean) / stdDev
	if zScore < -e.cfg.AnomalyThreshold {
		severity := "medium"
		if zScore < -3 {
			severity = "high"
		}
		anomalies = append(anomalies, Anomaly{
			Dept:     "Floor",
			Metric:   "Production Drop",
			Value:    todayValue,
			Average:  math.Round(mean),
			Severity: severity,
		})
	}

	return anomalies
}
