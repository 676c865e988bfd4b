package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized    bool   `json:"initialized"`    // 工作簿是否可读
	Workbook       string `json:"workbook"`       // 工作簿路径
	Today          string `json:"today"`          // 当日日期（日志格式）
	FloorRows      int    `json:"floorRows"`      // 车间日志行数（含地下室）
	QualityRows    int    `json:"qualityRows"`    // 质检日志行数
	StockRows      int    `json:"stockRows"`      // 库存日志行数
	AttendanceRows int    `json:"attendanceRows"` // 考勤日志行数
	MasterRows     int    `json:"masterRows"`     // 主表日行数
	ArchiveRows    int    `json:"archiveRows"`    // 归档行数
	Submissions    int    `json:"submissions"`    // 打卡提交数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		Workbook: h.source.Path(),
		Today:    h.todayLog(),
	}

	logs, err := h.source.FetchLogs()
	if err == nil {
		resp.Initialized = true
		resp.FloorRows = len(logs.Floor) + len(logs.Basement)
		resp.QualityRows = len(logs.Quality)
		resp.StockRows = len(logs.Stock)
		resp.AttendanceRows = len(logs.Attendance)
	}

	if rows, err := h.source.MasterRows(); err == nil {
		resp.MasterRows = len(rows)
	}

	if h.store != nil {
		if count, err := h.store.CountArchive(); err == nil {
			resp.ArchiveRows = count
		}
		if count, err := h.store.CountSubmissions(); err == nil {
			resp.Submissions = count
		}
	}

	c.JSON(http.StatusOK, resp)
}
