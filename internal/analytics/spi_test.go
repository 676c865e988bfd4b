package analytics

import (
	"fmt"
	"testing"

	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
)

func TestSupervisorScores_ScoreAgainstDeptAverage(t *testing.T) {
	t.Parallel()

	// 部门均产 = (200+200+0+0)/4 = 100；产量为 0 的记录不参与个人分组
	floor := []model.FloorRecord{
		{Date: "15/12/2025", Supervisor: "Asha", Production: 200},
		{Date: "16/12/2025", Supervisor: "Asha", Production: 200},
		{Date: "15/12/2025", Supervisor: "Ravi", Production: 0},
		{Date: "16/12/2025", Supervisor: "Ravi", Production: 0},
	}

	scores := testEngine().SupervisorScores(floor)
	if len(scores) != 1 {
		t.Fatalf("unexpected score count: %d", len(scores))
	}

	s := scores[0]
	if s.Name != "Asha" || s.Score != 2.00 {
		t.Fatalf("unexpected score: %+v", s)
	}
	if s.TotalOutput != 400 {
		t.Fatalf("unexpected total output: %v", s.TotalOutput)
	}
	// 最近一次 200 没有超出个人均值 ±10%
	if s.Trend != "stable" {
		t.Fatalf("unexpected trend: %s", s.Trend)
	}
}

func TestSupervisorScores_Trend(t *testing.T) {
	t.Parallel()

	floor := []model.FloorRecord{
		{Supervisor: "Up", Production: 100},
		{Supervisor: "Up", Production: 200}, // 200 > 150*1.1
		{Supervisor: "Down", Production: 200},
		{Supervisor: "Down", Production: 100}, // 100 < 150*0.9
	}

	scores := testEngine().SupervisorScores(floor)
	if len(scores) != 2 {
		t.Fatalf("unexpected score count: %d", len(scores))
	}

	byName := map[string]SupervisorScore{}
	for _, s := range scores {
		byName[s.Name] = s
	}
	if byName["Up"].Trend != "up" {
		t.Fatalf("unexpected trend: %+v", byName["Up"])
	}
	if byName["Down"].Trend != "down" {
		t.Fatalf("unexpected trend: %+v", byName["Down"])
	}
}

func TestSupervisorScores_TopFiveDescending(t *testing.T) {
	t.Parallel()

	floor := make([]model.FloorRecord, 0, 7)
	for i := 1; i <= 7; i++ {
		floor = append(floor, model.FloorRecord{
			Supervisor: fmt.Sprintf("S%d", i),
			Production: float64(i * 100),
		})
	}

	scores := testEngine().SupervisorScores(floor)
	if len(scores) != 5 {
		t.Fatalf("unexpected score count: %d", len(scores))
	}
	if scores[0].Name != "S7" || scores[4].Name != "S3" {
		t.Fatalf("unexpected ranking: %+v", scores)
	}
	for i := 1; i < len(scores); i++ {
		if scores[i].Score > scores[i-1].Score {
			t.Fatalf("scores not descending: %+v", scores)
		}
	}
}

func TestSupervisorScores_MissingSupervisorSkipped(t *testing.T) {
	t.Parallel()

	floor := []model.FloorRecord{
		{Supervisor: "", Production: 500},
		{Supervisor: "Asha", Production: 100},
	}

	scores := testEngine().SupervisorScores(floor)
	if len(scores) != 1 || scores[0].Name != "Asha" {
		t.Fatalf("unexpected scores: %+v", scores)
	}
}

func TestSupervisorScores_EmptyInput(t *testing.T) {
	t.Parallel()

	scores := testEngine().SupervisorScores(nil)
	if len(scores) != 0 {
		t.Fatalf("unexpected scores: %+v", scores)
	}
}
