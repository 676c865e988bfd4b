package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
	"github.com/arpit-mittal-15/SOL-checklist/internal/sheets"
)

// DepartmentStatus 当日某部门的打卡状态
type DepartmentStatus struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Completed  bool   `json:"completed"`
	Supervisor string `json:"supervisor"`
	Timestamp  string `json:"timestamp"`
	Comment    string `json:"comment"`
}

type checklistResponse struct {
	Date        string             `json:"date"`
	RowIndex    int                `json:"rowIndex"`
	Departments []DepartmentStatus `json:"departments"`
	IsAllDone   bool               `json:"isAllDone"`
}

// GetChecklist 获取当日打卡状态
// GET /api/checklist
// 主表没有当日行时先创建再读取
func (h *Handler) GetChecklist(c *gin.Context) {
	today := h.todayMaster()

	row, err := h.source.TodayRow(today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取主表失败"})
		return
	}

	if row == nil {
		if err := h.source.CreateTodayRow(today); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "创建当日行失败"})
			return
		}
		row, err = h.source.TodayRow(today)
		if err != nil || row == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "读取主表失败"})
			return
		}
	}

	departments := make([]DepartmentStatus, 0, len(model.Departments()))
	isAllDone := true
	for _, d := range model.Departments() {
		status := DepartmentStatus{
			ID:         d.ID,
			Name:       d.Name,
			Completed:  cellAt(row.Cells, d.StartCol) == "TRUE",
			Supervisor: cellAt(row.Cells, d.StartCol+1),
			Timestamp:  cellAt(row.Cells, d.StartCol+2),
			Comment:    cellAt(row.Cells, d.StartCol+3),
		}
		if !status.Completed {
			isAllDone = false
		}
		departments = append(departments, status)
	}

	c.JSON(http.StatusOK, checklistResponse{
		Date:        today,
		RowIndex:    row.Index,
		Departments: departments,
		IsAllDone:   isAllDone,
	})
}

type submitChecklistRequest struct {
	RowIndex   int    `json:"rowIndex"`
	DeptID     string `json:"deptId"`
	Supervisor string `json:"supervisor"`
	Comment    string `json:"comment"`
	SheetLink  string `json:"sheetLink"` // 负责人数据工作簿路径
}

// SubmitChecklist 提交部门打卡
// POST /api/checklist
// 核对部门以外的提交必须先通过关联工作簿的当日数据校验；
// 通过后回写主表数据块，并把关联行归档进本地库
func (h *Handler) SubmitChecklist(c *gin.Context) {
	var req submitChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	dept, ok := model.FindDepartment(req.DeptID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效部门"})
		return
	}
	if req.RowIndex <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "非法行号"})
		return
	}

	if dept.ID != model.VerifyDeptID {
		if req.SheetLink == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "缺少关联工作簿"})
			return
		}
		hasToday, err := sheets.CheckSheetForToday(req.SheetLink, h.todayDay())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无法读取关联工作簿"})
			return
		}
		if !hasToday {
			c.JSON(http.StatusBadRequest, gin.H{"error": "关联工作簿缺少当日数据"})
			return
		}
	}

	timestamp := h.now().Format("3:04:05 PM")
	values := []string{"TRUE", req.Supervisor, timestamp, req.Comment}
	if err := h.source.UpdateDepartment(req.RowIndex, dept.StartCol, values); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存失败"})
		return
	}

	// 归档和提交记录尽力而为，失败不影响打卡结果
	if h.store != nil {
		_ = h.store.LogSubmission(dept.Name, req.Supervisor, req.Comment, h.now().Format(time.RFC3339))

		if dept.ID != model.VerifyDeptID && req.SheetLink != "" {
			if rows, err := sheets.ReadLinkedRows(req.SheetLink); err == nil {
				_, _, _ = h.store.ArchiveRows(dept.Name, req.Supervisor, rows)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
