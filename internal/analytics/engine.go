package analytics

import (
	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
)

// Config 引擎配置
// 所有阈值和窗口都显式注入，便于用不同参数测试
type Config struct {
	StandardUnitsPerBox float64 // 每箱标准件数
	AnomalyThreshold    float64 // z 分数报警阈值（取绝对值）
	HistoryDays         int     // 历史曲线条目上限
	TopSupervisors      int     // SPI 榜单人数上限
}

// DefaultEngineConfig 默认引擎配置
func DefaultEngineConfig() Config {
	return Config{
		StandardUnitsPerBox: 1000,
		AnomalyThreshold:    2.0,
		HistoryDays:         14,
		TopSupervisors:      5,
	}
}

// Engine 分析引擎
// 对一次抓取的不可变快照做纯计算，不持有跨请求状态，可并发使用
type Engine struct {
	cfg Config
}

// NewEngine 创建分析引擎，零值字段回落到默认配置
func NewEngine(cfg Config) *Engine {
	def := DefaultEngineConfig()
	if cfg.StandardUnitsPerBox <= 0 {
		cfg.StandardUnitsPerBox = def.StandardUnitsPerBox
	}
	if cfg.AnomalyThreshold <= 0 {
		cfg.AnomalyThreshold = def.AnomalyThreshold
	}
	if cfg.HistoryDays <= 0 {
		cfg.HistoryDays = def.HistoryDays
	}
	if cfg.TopSupervisors <= 0 {
		cfg.TopSupervisors = def.TopSupervisors
	}
	return &Engine{cfg: cfg}
}

// Result 一次分析的完整输出
type Result struct {
	KPIs             KPISet            `json:"kpis"`
	History          []HistoryPoint    `json:"history"`
	SupervisorScores []SupervisorScore `json:"supervisorScores"`
	Anomalies        []Anomaly         `json:"anomalies"`
}

// Run 在一份快照上顺序执行全部分析
// today 为与日志日期同格式的字符串，是"当天"与历史行之间的连接键
func (e *Engine) Run(data model.AnalyticsData, today string) Result {
	kpis := e.KPIs(data, today)

	return Result{
		KPIs:             kpis,
		History:          e.History(data.Floor),
		SupervisorScores: e.SupervisorScores(data.Floor),
		Anomalies:        e.DetectAnomalies(data.Floor, kpis.TotalProduction),
	}
}

// EmptyResult 无可用数据时的降级输出
// 抓取失败不向上抛错，用零值 KPI 和空列表代替
func EmptyResult() Result {
	return Result{
		KPIs:             DefaultKPISet(),
		History:          []HistoryPoint{},
		SupervisorScores: []SupervisorScore{},
		Anomalies:        []Anomaly{},
	}
}
