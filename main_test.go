package main

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeAdvisor 测试用顾问实现，记录调用次数
type fakeAdvisor struct {
	calls  int
	result *Recommendation
	err    error
}

func (f *fakeAdvisor) Recommend(ctx context.Context, query string) (*Recommendation, error) {
	f.calls++
	return f.result, f.err
}

// newTestModel 构造测试用模型（英文、内存存储、默认配置）
func newTestModel(advisor Advisor) *Model {
	loadI18nFiles()
	return &Model{
		state:    QueryInput,
		language: English,
		config:   getDefaultConfig(),
		advisor:  advisor,
		store:    NewWatchlistStore(newMemoryStorage()),
	}
}

// runCmd 执行命令并把产生的消息送回模型（展开批量命令）
func runCmd(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			runCmd(m, sub)
		}
		return
	}
	m.Update(msg)
}

func TestSubmitBlankQuery(t *testing.T) {
	tests := []struct {
		input string
		desc  string
	}{
		{"", "空字符串"},
		{"   ", "纯空格"},
		{" \t ", "空白字符"},
	}

	for _, tt := range tests {
		advisor := &fakeAdvisor{}
		m := newTestModel(advisor)

		cmd := m.submitQuery(tt.input)

		if cmd != nil {
			t.Errorf("%s: 空白查询不应产生命令", tt.desc)
		}
		if advisor.calls != 0 {
			t.Errorf("%s: 空白查询不应调用AI服务, 调用了 %d 次", tt.desc, advisor.calls)
		}
		if m.message != "Please enter a sector or trend to search." {
			t.Errorf("%s: 校验信息 = %q", tt.desc, m.message)
		}
		if m.isLoading {
			t.Errorf("%s: 空白查询不应进入加载状态", tt.desc)
		}
	}
}

func TestSubmitSuccessScenario(t *testing.T) {
	advisor := &fakeAdvisor{
		result: &Recommendation{
			Stocks:  []Stock{{Ticker: "NVDA", CompanyName: "NVIDIA", GrowthPotential: "g", PublicSentiment: "s"}},
			Sources: []Source{{URI: "https://x", Title: "Y"}},
		},
	}
	m := newTestModel(advisor)

	cmd := m.submitQuery("AI technology stocks")
	if cmd == nil {
		t.Fatal("有效查询应该产生命令")
	}
	if !m.isLoading {
		t.Error("提交后应进入加载状态")
	}

	runCmd(m, cmd)

	if advisor.calls != 1 {
		t.Errorf("AI服务调用次数 = %d, 期望 1", advisor.calls)
	}
	if len(m.stocks) != 1 || m.stocks[0].Ticker != "NVDA" {
		t.Errorf("结果股票 = %v, 期望1只NVDA", m.stocks)
	}
	if len(m.sources) != 1 || m.sources[0].URI != "https://x" {
		t.Errorf("结果来源 = %v", m.sources)
	}
	if m.isLoading {
		t.Error("结果到达后加载标志应清除")
	}
	if m.errorMsg != "" {
		t.Errorf("成功时不应有错误信息, 实际 = %q", m.errorMsg)
	}
	if m.state != ResultViewing {
		t.Errorf("成功后应进入结果视图, 实际状态 = %d", m.state)
	}
}

func TestSubmitErrorMessage(t *testing.T) {
	m := newTestModel(&fakeAdvisor{})

	m.submitQuery("AI technology stocks")
	m.Update(queryResultMsg{seq: m.querySeq, err: errors.New("timeout")})

	expected := "Failed to fetch stock data: timeout. Please try again."
	if m.errorMsg != expected {
		t.Errorf("错误信息 = %q, 期望 %q", m.errorMsg, expected)
	}
	if len(m.stocks) != 0 {
		t.Errorf("失败后结果应为空, 实际 = %v", m.stocks)
	}
	if m.isLoading {
		t.Error("失败后加载标志应清除")
	}
}

func TestSubmitGenericErrorMessage(t *testing.T) {
	m := newTestModel(&fakeAdvisor{})

	m.submitQuery("AI technology stocks")
	m.Update(queryResultMsg{seq: m.querySeq, err: errors.New("  ")})

	expected := "An unknown error occurred while fetching stock data. Please try again."
	if m.errorMsg != expected {
		t.Errorf("无错误文本时应使用通用文案, 实际 = %q", m.errorMsg)
	}
}

func TestStaleResultDiscarded(t *testing.T) {
	m := newTestModel(&fakeAdvisor{})

	m.submitQuery("AI technology stocks")

	// 过期序号的结果必须被丢弃
	m.Update(queryResultMsg{
		seq:    m.querySeq - 1,
		result: &Recommendation{Stocks: []Stock{{Ticker: "OLD"}}},
	})

	if !m.isLoading {
		t.Error("过期结果不应清除加载标志")
	}
	if len(m.stocks) != 0 {
		t.Errorf("过期结果不应写入状态, 实际 = %v", m.stocks)
	}
}

func TestResubmitRefusedWhileLoading(t *testing.T) {
	m := newTestModel(&fakeAdvisor{})

	m.submitQuery("first query")
	cmd := m.submitQuery("second query")

	if cmd != nil {
		t.Error("请求进行中不应接受新的提交")
	}
	if m.activeQuery != "first query" {
		t.Errorf("activeQuery = %q, 期望保持第一次查询", m.activeQuery)
	}
	if m.message != "A request is already in progress, please wait." {
		t.Errorf("提示信息 = %q", m.message)
	}
}

func TestToggleWatchlistFromResults(t *testing.T) {
	m := newTestModel(&fakeAdvisor{})
	m.stocks = []Stock{{Ticker: "NVDA", CompanyName: "NVIDIA"}}
	m.state = ResultViewing
	m.resultCursor = 0

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.store.Contains("NVDA") {
		t.Error("回车后股票应加入自选列表")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.store.Contains("NVDA") {
		t.Error("再次回车应将股票移出自选列表")
	}
}

func TestSwitchViewKeepsResults(t *testing.T) {
	m := newTestModel(&fakeAdvisor{})
	m.stocks = []Stock{{Ticker: "NVDA"}}
	m.sources = []Source{{URI: "https://x", Title: "Y"}}
	m.state = ResultViewing

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.state != WatchlistViewing {
		t.Fatalf("Tab后应进入自选视图, 实际状态 = %d", m.state)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.state != ResultViewing {
		t.Fatalf("再按Tab应返回结果视图, 实际状态 = %d", m.state)
	}
	if len(m.stocks) != 1 || len(m.sources) != 1 {
		t.Error("切换视图不应清除已有结果")
	}
}

func TestExampleQuerySubmits(t *testing.T) {
	m := newTestModel(&fakeAdvisor{})

	m.Update(tea.KeyMsg{Type: tea.KeyF1})

	if m.queryInput != exampleQueries[0] {
		t.Errorf("示例查询应写入输入框, 实际 = %q", m.queryInput)
	}
	if !m.isLoading {
		t.Error("选择示例查询后应立即提交")
	}
	if m.activeQuery != exampleQueries[0] {
		t.Errorf("activeQuery = %q, 期望 %q", m.activeQuery, exampleQueries[0])
	}
}

func TestRemoveFromWatchlistView(t *testing.T) {
	m := newTestModel(&fakeAdvisor{})
	m.store.Add(Stock{Ticker: "NVDA"})
	m.store.Add(Stock{Ticker: "AMD"})
	m.state = WatchlistViewing
	m.watchlistCursor = 1

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	if m.store.Contains("AMD") {
		t.Error("按D应删除选中的股票")
	}
	if !m.store.Contains("NVDA") {
		t.Error("其他股票不应受影响")
	}
	if m.watchlistCursor != 0 {
		t.Errorf("删除末尾条目后光标应回退, 实际 = %d", m.watchlistCursor)
	}
}
