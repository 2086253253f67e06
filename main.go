package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config := loadConfig()

	logLevel := LogInfo
	if config.System.DebugMode {
		logLevel = LogDebug
	}
	if err := InitLogger(logDir, logLevel); err != nil {
		fmt.Printf("Warning: failed to init logger: %v\n", err)
	}

	loadI18nFiles()

	store := NewWatchlistStore(NewFileStorage(dataDir))
	store.Hydrate()

	advisor, err := NewGeminiAdvisor(context.Background(), config.AI)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	language := English
	if config.System.Language == string(Chinese) {
		language = Chinese
	}

	m := &Model{
		state:     QueryInput,
		language:  language,
		config:    config,
		advisor:   advisor,
		store:     store,
		debugMode: config.System.DebugMode,
	}
	globalModel = m

	logInfo("log.app.started")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if globalLogger != nil {
		globalLogger.Sync()
	}
}

// ============================================================================
// Bubble Tea 接口
// ============================================================================

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case QueryInput:
			return m.handleQueryInput(msg)
		case ResultViewing:
			return m.handleResultViewing(msg)
		case WatchlistViewing:
			return m.handleWatchlistViewing(msg)
		case LanguageSelection:
			return m.handleLanguageSelection(msg)
		}
	case queryResultMsg:
		return m.handleQueryResult(msg)
	case spinnerTickMsg:
		if m.isLoading {
			m.spinnerPos++
			return m, m.spinnerTickCmd()
		}
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case QueryInput:
		return m.viewQueryInput()
	case ResultViewing:
		return m.viewResults()
	case WatchlistViewing:
		return m.viewWatchlist()
	case LanguageSelection:
		return m.viewLanguageSelection()
	}
	return ""
}

// ============================================================================
// 查询提交流程
// ============================================================================

// spinnerTickCmd 加载动画定时器
func (m *Model) spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// submitQuery 提交一次查询
// 空白输入直接拒绝并显示校验信息，绝不调用AI服务；
// 请求进行中时拒绝重复提交（表单禁用约定）
func (m *Model) submitQuery(query string) tea.Cmd {
	if m.isLoading {
		m.message = m.getText("search.inFlight")
		return nil
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		m.message = m.getText("search.emptyQuery")
		return nil
	}

	debugPrint("debug.search.submit", trimmed)

	// 重置上一次的结果和错误，进入加载状态
	m.message = ""
	m.errorMsg = ""
	m.stocks = nil
	m.sources = nil
	m.resultCursor = 0
	m.resultScrollPos = 0
	m.activeQuery = trimmed
	m.isLoading = true

	// 新提交淘汰旧请求：序号递增，旧请求的结果到达时被丢弃
	m.querySeq++
	seq := m.querySeq
	if m.cancelQuery != nil {
		m.cancelQuery()
	}

	timeout := time.Duration(m.config.AI.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	m.cancelQuery = cancel

	advisor := m.advisor
	return tea.Batch(
		func() tea.Msg {
			result, err := advisor.Recommend(ctx, trimmed)
			return queryResultMsg{seq: seq, result: result, err: err}
		},
		m.spinnerTickCmd(),
	)
}

// handleQueryResult 处理AI查询结果
// 无论成功失败都清除加载标志；过期序号的结果直接丢弃
func (m *Model) handleQueryResult(msg queryResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.querySeq {
		debugPrint("debug.search.staleResult", msg.seq)
		return m, nil
	}

	m.isLoading = false
	if m.cancelQuery != nil {
		m.cancelQuery()
		m.cancelQuery = nil
	}

	if msg.err != nil {
		m.errorMsg = m.buildQueryError(msg.err)
		logError("log.search.failed", m.activeQuery, msg.err)
		return m, nil
	}

	m.stocks = msg.result.Stocks
	m.sources = msg.result.Sources
	m.resetResultScroll()
	logInfo("log.search.completed", m.activeQuery, len(m.stocks), len(m.sources))

	// 用户已切到自选列表时不强行拉回搜索视图，结果留在原地
	if m.state == QueryInput {
		m.state = ResultViewing
	} else if m.state == WatchlistViewing {
		m.previousState = ResultViewing
	}
	return m, nil
}

// buildQueryError 构造用户可见的错误信息
// 有错误文本时嵌入固定前缀，空文本时使用通用后备文案
func (m *Model) buildQueryError(err error) string {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return m.getText("search.errorGeneric")
	}
	return fmt.Sprintf(m.getText("search.errorPrefix"), msg)
}

// ============================================================================
// 按键处理 - 查询输入
// ============================================================================

// handleQueryInput 查询输入状态的按键处理
func (m *Model) handleQueryInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// 有历史结果时返回结果视图，否则退出
		if len(m.stocks) > 0 {
			m.state = ResultViewing
			m.message = ""
			return m, nil
		}
		return m, tea.Quit
	case "enter":
		return m, m.submitQuery(m.queryInput)
	case "tab":
		m.switchToWatchlist()
		return m, nil
	case "ctrl+l":
		m.state = LanguageSelection
		m.languageCursor = languageIndex(m.language)
		return m, nil
	case "f1", "f2", "f3", "f4":
		// 示例查询：设置输入内容并立即提交
		index := int(msg.String()[1] - '1')
		if index >= 0 && index < len(exampleQueries) {
			m.queryInput = exampleQueries[index]
			m.queryCursor = len([]rune(m.queryInput))
			return m, m.submitQuery(m.queryInput)
		}
		return m, nil
	case "pgup":
		m.scrollDebugUp()
		return m, nil
	case "pgdown":
		m.scrollDebugDown()
		return m, nil
	default:
		if m.isLoading {
			// 请求进行中表单禁用
			return m, nil
		}
		if handleTextInput(msg, &m.queryInput, &m.queryCursor) {
			m.message = ""
		}
		return m, nil
	}
}

// ============================================================================
// 按键处理 - 结果浏览
// ============================================================================

// handleResultViewing 结果浏览状态的按键处理
func (m *Model) handleResultViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "/":
		// 回到查询输入（保留已有结果）
		m.state = QueryInput
		m.message = ""
		return m, nil
	case "tab":
		m.switchToWatchlist()
		return m, nil
	case "up", "k", "w":
		m.scrollResultsUp()
		return m, nil
	case "down", "j", "s":
		m.scrollResultsDown()
		return m, nil
	case "enter", " ":
		m.toggleSelectedStock()
		return m, nil
	case "pgup":
		m.scrollDebugUp()
		return m, nil
	case "pgdown":
		m.scrollDebugDown()
		return m, nil
	}
	return m, nil
}

// toggleSelectedStock 收藏/取消收藏当前选中的股票
func (m *Model) toggleSelectedStock() {
	if m.resultCursor < 0 || m.resultCursor >= len(m.stocks) {
		return
	}

	stock := m.stocks[m.resultCursor]
	if m.store.Contains(stock.Ticker) {
		m.store.Remove(stock.Ticker)
		m.message = fmt.Sprintf(m.getText("result.removed"), stock.Ticker)
		debugPrint("debug.watchlist.removed", stock.Ticker)
	} else {
		m.store.Add(stock)
		m.message = fmt.Sprintf(m.getText("result.added"), stock.Ticker)
		debugPrint("debug.watchlist.added", stock.Ticker)
	}
}

// ============================================================================
// 按键处理 - 自选列表
// ============================================================================

// switchToWatchlist 切换到自选列表视图（记住来路以便返回）
func (m *Model) switchToWatchlist() {
	if m.state == WatchlistViewing {
		return
	}
	m.previousState = m.state
	m.state = WatchlistViewing
	m.message = ""
	m.resetWatchlistScroll()
}

// handleWatchlistViewing 自选列表状态的按键处理
func (m *Model) handleWatchlistViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "tab":
		// 返回进入前的搜索视图，已有结果不被清除
		m.state = m.previousState
		m.message = ""
		return m, nil
	case "up", "k", "w":
		m.scrollWatchlistUp()
		return m, nil
	case "down", "j", "s":
		m.scrollWatchlistDown()
		return m, nil
	case "d", "delete", "backspace":
		m.removeSelectedFromWatchlist()
		return m, nil
	case "pgup":
		m.scrollDebugUp()
		return m, nil
	case "pgdown":
		m.scrollDebugDown()
		return m, nil
	}
	return m, nil
}

// removeSelectedFromWatchlist 删除自选列表当前选中的股票
func (m *Model) removeSelectedFromWatchlist() {
	stocks := m.store.Stocks()
	if m.watchlistCursor < 0 || m.watchlistCursor >= len(stocks) {
		return
	}

	ticker := stocks[m.watchlistCursor].Ticker
	m.store.Remove(ticker)
	m.message = fmt.Sprintf(m.getText("result.removed"), ticker)
	debugPrint("debug.watchlist.removed", ticker)
	m.clampWatchlistCursor()
}

// ============================================================================
// 按键处理 - 语言选择
// ============================================================================

// languageIndex 语言对应的选项下标
func languageIndex(language Language) int {
	if language == Chinese {
		return 0
	}
	return 1
}

// handleLanguageSelection 语言选择状态的按键处理
func (m *Model) handleLanguageSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.state = QueryInput
		return m, nil
	case "up", "k", "w":
		if m.languageCursor > 0 {
			m.languageCursor--
		}
		return m, nil
	case "down", "j", "s":
		if m.languageCursor < 1 {
			m.languageCursor++
		}
		return m, nil
	case "enter", " ":
		if m.languageCursor == 0 {
			m.language = Chinese
		} else {
			m.language = English
		}
		m.config.System.Language = string(m.language)
		if err := saveConfig(m.config); err != nil {
			logWarn("log.config.saveFailed", err)
		}
		m.state = QueryInput
		return m, nil
	}
	return m, nil
}
