package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
)

// GetLeaderboard 提交时间排行榜
// GET /api/leaderboard
// 每次查询从主表全量重建，不落任何中间状态
func (h *Handler) GetLeaderboard(c *gin.Context) {
	rows, err := h.source.MasterRows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取主表失败"})
		return
	}

	entries := h.scorer.Build(model.Departments(), rows, h.todayDay())

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
