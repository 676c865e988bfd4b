package analytics

import (
	"testing"

	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
)

func floorDays(values ...float64) []model.FloorRecord {
	recs := make([]model.FloorRecord, 0, len(values))
	for i, v := range values {
		recs = append(recs, model.FloorRecord{
			Date:       "1" + string(rune('0'+i)) + "/12/2025",
			Production: v,
		})
	}
	return recs
}

func TestDetectAnomalies_InsufficientHistory(t *testing.T) {
	t.Parallel()

	anomalies := testEngine().DetectAnomalies(floorDays(100, 100), 0)
	if len(anomalies) != 0 {
		t.Fatalf("unexpected anomalies: %+v", anomalies)
	}
}

func TestDetectAnomalies_FlatHistoryNoAnomaly(t *testing.T) {
	t.Parallel()

	// 4 天产量相同，今天也相同：z = 0
	anomalies := testEngine().DetectAnomalies(floorDays(100, 100, 100, 100), 100)
	if len(anomalies) != 0 {
		t.Fatalf("unexpected anomalies: %+v", anomalies)
	}
}

func TestDetectAnomalies_SteepDropHighSeverity(t *testing.T) {
	t.Parallel()

	// 历史 [10,10,10,10]，今天 0：stdDev=0 按 1 处理，z = -10
	anomalies := testEngine().DetectAnomalies(floorDays(10, 10, 10, 10), 0)
	if len(anomalies) != 1 {
		t.Fatalf("unexpected anomaly count: %d", len(anomalies))
	}

	a := anomalies[0]
	if a.Dept != "Floor" || a.Metric != "Production Drop" {
		t.Fatalf("unexpected anomaly: %+v", a)
	}
	if a.Value != 0 || a.Average != 10 {
		t.Fatalf("unexpected anomaly values: %+v", a)
	}
	if a.Severity != "high" {
		t.Fatalf("unexpected severity: %s", a.Severity)
	}
}

func TestDetectAnomalies_ModerateDropMediumSeverity(t *testing.T) {
	t.Parallel()

	// mean=107.5 std≈12.99，today=75 → z≈-2.5：介于 -3 与 -2 之间
	anomalies := testEngine().DetectAnomalies(floorDays(100, 100, 100, 130), 75)
	if len(anomalies) != 1 {
		t.Fatalf("unexpected anomaly count: %d", len(anomalies))
	}
	if anomalies[0].Severity != "medium" {
		t.Fatalf("unexpected severity: %s", anomalies[0].Severity)
	}
	if anomalies[0].Average != 108 {
		t.Fatalf("unexpected average: %v", anomalies[0].Average)
	}
}

func TestDetectAnomalies_NoUpperBoundAlarm(t *testing.T) {
	t.Parallel()

	// 只检测骤降，超产不告警
	anomalies := testEngine().DetectAnomalies(floorDays(100, 110, 90, 105), 100000)
	if len(anomalies) != 0 {
		t.Fatalf("unexpected anomalies: %+v", anomalies)
	}
}

func TestDetectAnomalies_AlternateThreshold(t *testing.T) {
	t.Parallel()

	engine := NewEngine(Config{AnomalyThreshold: 1.0})
	// z≈-1.36：默认阈值 2.0 不报，阈值 1.0 报 medium
	records := floorDays(100, 110, 90, 105)

	if got := testEngine().DetectAnomalies(records, 91); len(got) != 0 {
		t.Fatalf("unexpected anomalies with default threshold: %+v", got)
	}
	got := engine.DetectAnomalies(records, 91)
	if len(got) != 1 || got[0].Severity != "medium" {
		t.Fatalf("unexpected anomalies with threshold 1.0: %+v", got)
	}
}
