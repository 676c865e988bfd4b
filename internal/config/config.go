package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server      ServerConfig      `toml:"server"`
	Data        DataConfig        `toml:"data"`
	Business    BusinessConfig    `toml:"business"`
	Leaderboard LeaderboardConfig `toml:"leaderboard"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir  string `toml:"data_dir"`
	Workbook string `toml:"workbook"` // 打卡工作簿（外部表格的本地同步副本）
}

// BusinessConfig 业务配置
// 分析引擎的全部常量都来自这里，不在引擎内部写死
type BusinessConfig struct {
	StandardUnitsPerBox float64 `toml:"standard_units_per_box"` // 每箱标准件数
	AnomalyThreshold    float64 `toml:"anomaly_threshold"`      // z 分数报警阈值
	HistoryDays         int     `toml:"history_days"`           // 历史曲线保留天数
	TopSupervisors      int     `toml:"top_supervisors"`        // SPI 榜单人数
	Timezone            string  `toml:"timezone"`               // 工厂所在时区
	DateLayout          string  `toml:"date_layout"`            // 日志日期格式（与表格一致）
	MasterDateLayout    string  `toml:"master_date_layout"`     // 主表日期格式
}

// LeaderboardConfig 排行榜配置
type LeaderboardConfig struct {
	DeadlineMinutes   int    `toml:"deadline_minutes"`    // 截止时间（自 0 点起的分钟数）
	DecayStartMinutes int    `toml:"decay_start_minutes"` // 开始扣分的时间点
	MaxPoints         int    `toml:"max_points"`
	MinPoints         int    `toml:"min_points"`   // 截止前提交的保底分
	ScoreWindow       string `toml:"score_window"` // running=全量累计 / trailing=滑动窗口
	WeeklyDays        int    `toml:"weekly_days"`
	MonthlyDays       int    `toml:"monthly_days"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20317,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:  "data",
			Workbook: "checklist.xlsx",
		},
		Business: BusinessConfig{
			StandardUnitsPerBox: 1000,
			AnomalyThreshold:    2.0,
			HistoryDays:         14,
			TopSupervisors:      5,
			Timezone:            "Asia/Kolkata",
			DateLayout:          "2/1/2006",
			MasterDateLayout:    "2006-01-02",
		},
		Leaderboard: LeaderboardConfig{
			DeadlineMinutes:   1170, // 19:30
			DecayStartMinutes: 1080, // 18:00
			MaxPoints:         100,
			MinPoints:         10,
			ScoreWindow:       "running",
			WeeklyDays:        7,
			MonthlyDays:       30,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从 config.toml 加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// 配置文件不存在，使用默认配置
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	// 环境变量覆盖（用于 E2E / 本地运行）
	if v := os.Getenv("SOL_CHECKLIST_WORKBOOK"); v != "" {
		config.Data.Workbook = v
	}

	return config, info, nil
}

// LoadConfig 从 config.toml 加载配置
// 配置文件位于可执行文件同目录下
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir 确保数据目录存在
// 数据目录位于可执行文件同目录下
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// WorkbookPath 获取打卡工作簿的绝对路径
// 相对路径时以可执行文件目录为基准
func WorkbookPath(config *AppConfig) string {
	if filepath.IsAbs(config.Data.Workbook) {
		return config.Data.Workbook
	}
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.Workbook)
}
