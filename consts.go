package main

import "time"

// 文件路径常量
const (
	dataDir      = "data"
	watchlistKey = "watchlist.json"
	configFile   = "conf/config.yml"
	logDir       = "logs"
)

// 加载动画常量
const spinnerInterval = 120 * time.Millisecond

// spinnerFrames 加载动画帧
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// 语言常量
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// 应用状态常量
type AppState int

const (
	QueryInput        AppState = iota // 查询输入状态（搜索视图）
	ResultViewing                     // 结果浏览状态（搜索视图）
	WatchlistViewing                  // 自选列表状态
	LanguageSelection                 // 语言选择状态
)

// exampleQueries 示例查询（按 F1-F4 选择后立即提交）
var exampleQueries = []string{
	"AI technology stocks",
	"Renewable energy companies",
	"Semiconductor industry",
	"Electric vehicle market",
}
