package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListArchive 查询归档行
// GET /api/archive?department=&limit=
func (h *Handler) ListArchive(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "归档库未启用"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	department := c.Query("department")

	items, err := h.store.ListArchive(department, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	total, err := h.store.CountArchive()
	if err != nil {
		total = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
	})
}

// ListSubmissions 查询打卡提交记录
// GET /api/submissions?limit=
func (h *Handler) ListSubmissions(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "归档库未启用"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.store.ListSubmissions(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
