package analytics

import (
	"math"
	"sort"

	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
)

// SupervisorScore 负责人绩效（SPI）
// score 为个人均产相对部门均产的比值
type SupervisorScore struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`       // 2 位小数
	TotalOutput float64 `json:"totalOutput"` // 历史总产量
	Trend       string  `json:"trend"`       // up / down / stable
}

// SupervisorScores 计算负责人绩效榜
// 按负责人姓名原样分组（同名即合并），缺姓名或产量为 0 的记录不参与分组，
// 但所有记录都计入部门均产。并列分数保持输入顺序。
func (e *Engine) SupervisorScores(floor []model.FloorRecord) []SupervisorScore {
	order := make([]string, 0)
	outputs := make(map[string][]float64)

	for _, r := range floor {
		if r.Supervisor == "" || r.Production == 0 {
			continue
		}
		if _, ok := outputs[r.Supervisor]; !ok {
			order = append(order, r.Supervisor)
		}
		outputs[r.Supervisor] = append(outputs[r.Supervisor], r.Production)
	}

	var deptSum float64
	for _, r := range floor {
		deptSum += r.Production
	}
	deptCount := len(floor)
	if deptCount == 0 {
		deptCount = 1
	}
	deptAverage := deptSum / float64(deptCount)
	if deptAverage == 0 {
		deptAverage = 1
	}

	scores := make([]SupervisorScore, 0, len(order))
	for _, name := range order {
		vals := outputs[name]

		var sum float64
		for _, v := range vals {
			sum += v
		}
		avg := sum / float64(len(vals))

		last := vals[len(vals)-1]
		trend := "stable"
		if last > avg*1.1 {
			trend = "up"
		}
		if last < avg*0.9 {
			trend = "down"
		}

		scores = append(scores, SupervisorScore{
			Name:        name,
			Score:       math.Round(avg/deptAverage*100) / 100,
			TotalOutput: sum,
			Trend:       trend,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if len(scores) > e.cfg.TopSupervisors {
		scores = scores[:e.cfg.TopSupervisors]
	}
	return scores
}
