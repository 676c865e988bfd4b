package leaderboard

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/arpit-mittal-15/SOL-checklist/internal/model"
)

// NoSubmission 未提交的哨兵分钟数，排序时永远垫底
const NoSubmission = 9999

// lateMarker 迟到标记，表格里会拼在时间串后面
const lateMarker = "🔴 LATE"

// Config 排行榜计分配置
type Config struct {
	DeadlineMinutes   int    // 截止时间（自 0 点起的分钟数）
	DecayStartMinutes int    // 开始扣分的时间点
	MaxPoints         int
	MinPoints         int    // 截止前提交的保底分
	ScoreWindow       string // running=全量累计 / trailing=仅统计窗口内的日行
	WeeklyDays        int
	MonthlyDays       int
}

// DefaultConfig 默认计分配置：截止 19:30，18:00 起开始扣分
func DefaultConfig() Config {
	return Config{
		DeadlineMinutes:   1170,
		DecayStartMinutes: 1080,
		MaxPoints:         100,
		MinPoints:         10,
		ScoreWindow:       "running",
		WeeklyDays:        7,
		MonthlyDays:       30,
	}
}

// Entry 排行榜条目，每个部门一条（核对部门除外）
type Entry struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Supervisor   string  `json:"supervisor"`   // 最近一次出现的负责人
	TodayTime    *string `json:"todayTime"`    // 当日提交时间，未提交为 null
	Points       int     `json:"points"`       // 当日得分
	WeeklyScore  int     `json:"weeklyScore"`
	MonthlyScore int     `json:"monthlyScore"`
}

// ParseClock 把 "7:15:00 PM" 式的时间串转成自 0 点起的分钟数
// 先剥掉迟到标记；空串或无法解析时返回 NoSubmission 哨兵
func ParseClock(ts string) int {
	clean := strings.TrimSpace(strings.ReplaceAll(ts, lateMarker, ""))
	if clean == "" {
		return NoSubmission
	}

	fields := strings.SplitN(clean, " ", 2)
	hm := strings.Split(fields[0], ":")
	if len(hm) < 2 {
		return NoSubmission
	}
	hours, errH := strconv.Atoi(hm[0])
	minutes, errM := strconv.Atoi(hm[1])
	if errH != nil || errM != nil {
		return NoSubmission
	}

	modifier := ""
	if len(fields) == 2 {
		modifier = strings.TrimSpace(fields[1])
	}
	if modifier == "PM" && hours != 12 {
		hours += 12
	}
	if modifier == "AM" && hours == 12 {
		hours = 0
	}

	return hours*60 + minutes
}

// DailyPoints 按提交时间计算当日得分
// 截止前每晚 2 分钟扣 1 分，扣到保底分为止；扣分起点之前提交可超过满分；
// 超过截止时间得 0 分。floor 取数学下整，而非向零截断。
func (c Config) DailyPoints(minutes int) int {
	if minutes > c.DeadlineMinutes {
		return 0
	}
	points := c.MaxPoints - int(math.Floor(float64(minutes-c.DecayStartMinutes)/2))
	if points < c.MinPoints {
		points = c.MinPoints
	}
	return points
}

// Scorer 排行榜计分器
// 与分析引擎相互独立，直接消费主表原始行
type Scorer struct {
	cfg Config
}

// NewScorer 创建计分器
func NewScorer(cfg Config) *Scorer {
	if cfg.DeadlineMinutes <= 0 {
		cfg = DefaultConfig()
	}
	return &Scorer{cfg: cfg}
}

// Build 扫描主表全部日行，重建排行榜
// 每行按部门列块读取负责人和提交时间；todayDay 为当日"几号"的数字串，
// 用包含匹配找当日行（沿用的宽松口径）。排序按当日提交时间升序，
// 当日未提交的部门无论积分多少都排在最后。
func (s *Scorer) Build(departments []model.Department, rows [][]string, todayDay string) []Entry {
	order := make([]string, 0, len(departments))
	entries := make(map[string]*Entry)

	for _, d := range departments {
		if d.ID == model.VerifyDeptID {
			continue
		}
		entries[d.Name] = &Entry{
			ID:         d.ID,
			Name:       d.Name,
			Supervisor: "Unknown",
		}
		order = append(order, d.Name)
	}

	for i, row := range rows {
		rowDate := cellAt(row, 0)

		// 滑动窗口口径下，只有窗口内的日行计入周 / 月累计
		inWeekly := s.cfg.ScoreWindow != "trailing" || i >= len(rows)-s.cfg.WeeklyDays
		inMonthly := s.cfg.ScoreWindow != "trailing" || i >= len(rows)-s.cfg.MonthlyDays

		for _, d := range departments {
			if d.ID == model.VerifyDeptID {
				continue
			}

			supervisor := cellAt(row, d.StartCol+1)
			timestamp := cellAt(row, d.StartCol+2)
			if timestamp == "" {
				continue
			}

			points := s.cfg.DailyPoints(ParseClock(timestamp))

			entry := entries[d.Name]
			if inWeekly {
				entry.WeeklyScore += points
			}
			if inMonthly {
				entry.MonthlyScore += points
			}
			if supervisor != "" {
				entry.Supervisor = supervisor
			}

			if todayDay != "" && strings.Contains(rowDate, todayDay) {
				ts := timestamp
				entry.TodayTime = &ts
				entry.Points = points
			}
		}
	}

	result := make([]Entry, 0, len(order))
	for _, name := range order {
		result = append(result, *entries[name])
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].TodayTime, result[j].TodayTime
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return ParseClock(*a) < ParseClock(*b)
	})

	return result
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
