package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ArchivedRow 归档行
type ArchivedRow struct {
	ID         int64    `json:"id"`
	BatchID    string   `json:"batchId"`
	ArchivedAt string   `json:"archivedAt"`
	Department string   `json:"department"`
	Supervisor string   `json:"supervisor"`
	Cells      []string `json:"cells"`
}

// ArchiveRows 批量归档关联工作簿的原始行
// 同一次提交的所有行共享一个批次ID，返回批次ID和写入行数
func (s *Store) ArchiveRows(department, supervisor string, rows [][]string) (string, int, error) {
	if len(rows) == 0 {
		return "", 0, nil
	}

	batchID := uuid.New().String()
	archivedAt := time.Now().Format(time.RFC3339)

	tx, err := s.db.Begin()
	if err != nil {
		return "", 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO archive_rows (batch_id, archived_at, department, supervisor, cells)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, row := range rows {
		cells, err := json.Marshal(row)
		if err != nil {
			return "", 0, fmt.Errorf("failed to encode cells: %w", err)
		}
		if _, err := stmt.Exec(batchID, archivedAt, department, supervisor, string(cells)); err != nil {
			return "", 0, fmt.Errorf("failed to insert archive row: %w", err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return "", 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return batchID, count, nil
}

// ListArchive 查询最近的归档行，department 为空时不过滤
func (s *Store) ListArchive(department string, limit int) ([]ArchivedRow, error) {
	if limit <= 0 {
		limit = 100
	}

	query := "SELECT id, batch_id, archived_at, department, supervisor, cells FROM archive_rows"
	args := []interface{}{}
	if department != "" {
		query += " WHERE department = ?"
		args = append(args, department)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive rows: %w", err)
	}
	defer rows.Close()

	result := make([]ArchivedRow, 0, limit)
	for rows.Next() {
		var r ArchivedRow
		var cells string
		if err := rows.Scan(&r.ID, &r.BatchID, &r.ArchivedAt, &r.Department, &r.Supervisor, &cells); err != nil {
			return nil, fmt.Errorf("failed to scan archive row: %w", err)
		}
		if err := json.Unmarshal([]byte(cells), &r.Cells); err != nil {
			// 旧数据格式损坏时保留原始文本，不中断查询
			r.Cells = []string{cells}
		}
		result = append(result, r)
	}

	return result, rows.Err()
}

// CountArchive 归档行总数
func (s *Store) CountArchive() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM archive_rows").Scan(&count)
	return count, err
}

// Submission 打卡提交记录
type Submission struct {
	ID          int64  `json:"id"`
	Department  string `json:"department"`
	Supervisor  string `json:"supervisor"`
	Comment     string `json:"comment"`
	SubmittedAt string `json:"submittedAt"`
}

// LogSubmission 记录一次打卡提交
func (s *Store) LogSubmission(department, supervisor, comment, submittedAt string) error {
	_, err := s.db.Exec(
		"INSERT INTO submissions (department, supervisor, comment, submitted_at) VALUES (?, ?, ?, ?)",
		department, supervisor, comment, submittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// ListSubmissions 查询最近的打卡提交
func (s *Store) ListSubmissions(limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		"SELECT id, department, supervisor, comment, submitted_at FROM submissions ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	result := make([]Submission, 0, limit)
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.Department, &sub.Supervisor, &sub.Comment, &sub.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		result = append(result, sub)
	}

	return result, rows.Err()
}

// CountSubmissions 打卡提交总数
func (s *Store) CountSubmissions() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM submissions").Scan(&count)
	return count, err
}
