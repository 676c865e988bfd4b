package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arpit-mittal-15/SOL-checklist/internal/analytics"
	"github.com/arpit-mittal-15/SOL-checklist/internal/config"
	"github.com/arpit-mittal-15/SOL-checklist/internal/leaderboard"
	"github.com/arpit-mittal-15/SOL-checklist/internal/sheets"
	"github.com/arpit-mittal-15/SOL-checklist/internal/store"
)

// Handler API 处理器
type Handler struct {
	cfg    *config.AppConfig
	source *sheets.Source
	store  *store.Store
	engine *analytics.Engine
	scorer *leaderboard.Scorer
	now    func() time.Time
}

// NewHandler 创建 API 处理器
// 引擎和计分器的全部常量来自配置，时钟按配置时区取当地时间
func NewHandler(cfg *config.AppConfig, source *sheets.Source, st *store.Store) *Handler {
	loc, err := time.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		// 时区库不可用时退回固定 IST 偏移
		loc = time.FixedZone("IST", 5*3600+30*60)
	}

	engine := analytics.NewEngine(analytics.Config{
		StandardUnitsPerBox: cfg.Business.StandardUnitsPerBox,
		AnomalyThreshold:    cfg.Business.AnomalyThreshold,
		HistoryDays:         cfg.Business.HistoryDays,
		TopSupervisors:      cfg.Business.TopSupervisors,
	})

	scorer := leaderboard.NewScorer(leaderboard.Config{
		DeadlineMinutes:   cfg.Leaderboard.DeadlineMinutes,
		DecayStartMinutes: cfg.Leaderboard.DecayStartMinutes,
		MaxPoints:         cfg.Leaderboard.MaxPoints,
		MinPoints:         cfg.Leaderboard.MinPoints,
		ScoreWindow:       cfg.Leaderboard.ScoreWindow,
		WeeklyDays:        cfg.Leaderboard.WeeklyDays,
		MonthlyDays:       cfg.Leaderboard.MonthlyDays,
	})

	return &Handler{
		cfg:    cfg,
		source: source,
		store:  st,
		engine: engine,
		scorer: scorer,
		now:    func() time.Time { return time.Now().In(loc) },
	}
}

// SetClock 替换时钟（测试用）
func (h *Handler) SetClock(now func() time.Time) {
	h.now = now
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 仪表盘分析
	router.GET("/dashboard", h.GetDashboard)

	// 提交时间排行榜
	router.GET("/leaderboard", h.GetLeaderboard)

	// 每日打卡
	router.GET("/checklist", h.GetChecklist)
	router.POST("/checklist", h.SubmitChecklist)

	// 归档查询与导出
	router.GET("/archive", h.ListArchive)
	router.GET("/submissions", h.ListSubmissions)
	router.GET("/export", h.ExportArchive)
}

// todayLog 当日日期串，与日志表 date 列同格式（字符串相等即"当天"）
func (h *Handler) todayLog() string {
	return h.now().Format(h.cfg.Business.DateLayout)
}

// todayMaster 当日日期串，主表格式
func (h *Handler) todayMaster() string {
	return h.now().Format(h.cfg.Business.MasterDateLayout)
}

// todayDay 当日"几号"的数字串，排行榜与关联表校验用的宽松匹配键
func (h *Handler) todayDay() string {
	return strconv.Itoa(h.now().Day())
}

func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}
