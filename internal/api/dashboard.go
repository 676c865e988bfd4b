package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arpit-mittal-15/SOL-checklist/internal/analytics"
	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
)

type dashboardResponse struct {
	Success          bool                        `json:"success"`
	KPIs             analytics.KPISet            `json:"kpis"`
	GraphData        []analytics.HistoryPoint    `json:"graphData"`
	SupervisorScores []analytics.SupervisorScore `json:"supervisorScores"`
	Anomalies        []analytics.Anomaly         `json:"anomalies"`
}

// GetDashboard 仪表盘分析数据
// GET /api/dashboard
// 抓取失败不报错，降级为零值 KPI 和空列表（见配置的默认指标口径）
func (h *Handler) GetDashboard(c *gin.Context) {
	logs, err := h.source.FetchLogs()
	if err != nil {
		result := analytics.EmptyResult()
		c.JSON(http.StatusOK, dashboardResponse{
			Success:          true,
			KPIs:             result.KPIs,
			GraphData:        result.History,
			SupervisorScores: result.SupervisorScores,
			Anomalies:        result.Anomalies,
		})
		return
	}

	// 地下室与一层同结构，归一化后并入车间记录
	floor := analytics.ParseFloorRows(logs.Floor)
	floor = append(floor, analytics.ParseFloorRows(logs.Basement)...)

	data := model.AnalyticsData{
		Floor:      floor,
		Quality:    analytics.ParseQualityRows(logs.Quality),
		Stock:      analytics.ParseStockRows(logs.Stock),
		Attendance: analytics.ParseAttendanceRows(logs.Attendance),
	}

	result := h.engine.Run(data, h.todayLog())

	c.JSON(http.StatusOK, dashboardResponse{
		Success:          true,
		KPIs:             result.KPIs,
		GraphData:        result.History,
		SupervisorScores: result.SupervisorScores,
		Anomalies:        result.Anomalies,
	})
}
