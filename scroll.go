package main

// ============================================================================
// 列表滚动控制
// 滚动位置从列表末尾起算：scrollPos == 0 表示显示最后一页
// ============================================================================

// visibleRange 根据滚动位置计算可见区间 [start, end)
func visibleRange(total, scrollPos, maxLines int) (int, int) {
	end := total - scrollPos
	if end > total {
		end = total
	}
	if end < 0 {
		end = 0
	}
	start := end - maxLines
	if start < 0 {
		start = 0
	}
	return start, end
}

// adjustScrollForCursor 调整滚动位置使光标保持在可见区间内
// 返回调整后的滚动位置
func adjustScrollForCursor(total, cursor, scrollPos, maxLines int) int {
	if total <= maxLines {
		return 0
	}

	start, end := visibleRange(total, scrollPos, maxLines)

	// 光标超出可见范围的上边界
	if cursor < start {
		scrollPos = total - cursor - maxLines
	}
	// 光标超出可见范围的下边界
	if cursor >= end {
		scrollPos = total - cursor - 1
	}
	if scrollPos < 0 {
		scrollPos = 0
	}
	return scrollPos
}

// ============================================================================
// 结果列表滚动
// ============================================================================

// scrollResultsUp 向上移动结果列表光标
func (m *Model) scrollResultsUp() {
	if m.resultCursor > 0 {
		m.resultCursor--
	}
	m.resultScrollPos = adjustScrollForCursor(len(m.stocks), m.resultCursor, m.resultScrollPos, m.config.Display.MaxLines)
}

// scrollResultsDown 向下移动结果列表光标
func (m *Model) scrollResultsDown() {
	if m.resultCursor < len(m.stocks)-1 {
		m.resultCursor++
	}
	m.resultScrollPos = adjustScrollForCursor(len(m.stocks), m.resultCursor, m.resultScrollPos, m.config.Display.MaxLines)
}

// resetResultScroll 重置结果列表光标到第一条
func (m *Model) resetResultScroll() {
	m.resultCursor = 0
	m.resultScrollPos = adjustScrollForCursor(len(m.stocks), 0, 0, m.config.Display.MaxLines)
}

// ============================================================================
// 自选列表滚动
// ============================================================================

// scrollWatchlistUp 向上移动自选列表光标
func (m *Model) scrollWatchlistUp() {
	if m.watchlistCursor > 0 {
		m.watchlistCursor--
	}
	m.watchlistScrollPos = adjustScrollForCursor(m.store.Len(), m.watchlistCursor, m.watchlistScrollPos, m.config.Display.MaxLines)
}

// scrollWatchlistDown 向下移动自选列表光标
func (m *Model) scrollWatchlistDown() {
	if m.watchlistCursor < m.store.Len()-1 {
		m.watchlistCursor++
	}
	m.watchlistScrollPos = adjustScrollForCursor(m.store.Len(), m.watchlistCursor, m.watchlistScrollPos, m.config.Display.MaxLines)
}

// resetWatchlistScroll 重置自选列表光标到第一条
func (m *Model) resetWatchlistScroll() {
	m.watchlistCursor = 0
	m.watchlistScrollPos = adjustScrollForCursor(m.store.Len(), 0, 0, m.config.Display.MaxLines)
}

// clampWatchlistCursor 删除条目后把光标拉回有效范围
func (m *Model) clampWatchlistCursor() {
	if m.watchlistCursor >= m.store.Len() {
		m.watchlistCursor = m.store.Len() - 1
	}
	if m.watchlistCursor < 0 {
		m.watchlistCursor = 0
	}
	m.watchlistScrollPos = adjustScrollForCursor(m.store.Len(), m.watchlistCursor, m.watchlistScrollPos, m.config.Display.MaxLines)
}
