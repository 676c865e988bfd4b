package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/arpit-mittal-15/SOL-checklist/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportArchive 导出归档数据为工作簿下载
// GET /api/export?department=&limit=
func (h *Handler) ExportArchive(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "归档库未启用"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "1000"))
	department := c.Query("department")

	items, err := h.store.ListArchive(department, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	f, err := buildArchiveWorkbook(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成导出文件失败"})
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成导出文件失败"})
		return
	}

	filename := fmt.Sprintf("archive_%s.xlsx", h.now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// buildArchiveWorkbook 把归档行铺成一张工作表
// 固定的元信息列在前，归档的原始单元格按原列序展开在后
func buildArchiveWorkbook(items []store.ArchivedRow) (*excelize.File, error) {
	f := excelize.NewFile()

	header := []interface{}{"Archived At", "Department", "Supervisor", "Batch"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		return nil, err
	}

	for i, item := range items {
		row := []interface{}{item.ArchivedAt, item.Department, item.Supervisor, item.BatchID}
		for _, cell := range item.Cells {
			row = append(row, cell)
		}

		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow("Sheet1", start, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
