package store

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "checklist.db")
	st, err := New(dbPath)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestArchiveRows_RoundTrip(t *testing.T) {
	st := newTestStore(t)

	rows := [][]string{
		{"29/08/2025", "6:10 PM", "1,500", "2"},
		{"29/08/2025", "6:15 PM", "800", "1"},
	}

	batchID, count, err := st.ArchiveRows("Production (First Floor)", "Asha", rows)
	if err != nil {
		t.Fatalf("archive rows: %v", err)
	}
	if batchID == "" || count != 2 {
		t.Fatalf("unexpected batch: id=%q count=%d", batchID, count)
	}

	items, err := st.ListArchive("", 10)
	if err != nil {
		t.Fatalf("list archive: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("unexpected item count: %d", len(items))
	}

	// 倒序返回，最后插入的行在前
	last := items[0]
	if last.BatchID != batchID || last.Department != "Production (First Floor)" {
		t.Fatalf("unexpected item: %+v", last)
	}
	if len(last.Cells) != 4 || last.Cells[2] != "800" {
		t.Fatalf("cells not restored: %+v", last.Cells)
	}

	total, err := st.CountArchive()
	if err != nil || total != 2 {
		t.Fatalf("unexpected total: %d err=%v", total, err)
	}
}

func TestArchiveRows_EmptyBatchIsNoop(t *testing.T) {
	st := newTestStore(t)

	batchID, count, err := st.ArchiveRows("Quality Check", "Meera", nil)
	if err != nil {
		t.Fatalf("archive rows: %v", err)
	}
	if batchID != "" || count != 0 {
		t.Fatalf("unexpected batch: id=%q count=%d", batchID, count)
	}
}

func TestListArchive_FilterByDepartment(t *testing.T) {
	st := newTestStore(t)

	if _, _, err := st.ArchiveRows("Quality Check", "Meera", [][]string{{"a"}}); err != nil {
		t.Fatalf("archive rows: %v", err)
	}
	if _, _, err := st.ArchiveRows("Attendance", "Nina", [][]string{{"b"}, {"c"}}); err != nil {
		t.Fatalf("archive rows: %v", err)
	}

	items, err := st.ListArchive("Attendance", 10)
	if err != nil {
		t.Fatalf("list archive: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("unexpected item count: %d", len(items))
	}
	for _, it := range items {
		if it.Department != "Attendance" {
			t.Fatalf("unexpected department: %+v", it)
		}
	}
}

func TestSubmissions_LogAndList(t *testing.T) {
	st := newTestStore(t)

	if err := st.LogSubmission("Attendance", "Nina", "all present", "2025-08-29T18:05:00+05:30"); err != nil {
		t.Fatalf("log submission: %v", err)
	}
	if err := st.LogSubmission("Quality Check", "Meera", "", "2025-08-29T18:40:00+05:30"); err != nil {
		t.Fatalf("log submission: %v", err)
	}

	items, err := st.ListSubmissions(10)
	if err != nil {
		t.Fatalf("list submissions: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("unexpected item count: %d", len(items))
	}
	if items[0].Department != "Quality Check" || items[1].Supervisor != "Nina" {
		t.Fatalf("unexpected items: %+v", items)
	}

	count, err := st.CountSubmissions()
	if err != nil || count != 2 {
		t.Fatalf("unexpected count: %d err=%v", count, err)
	}
}
