package main

import "testing"

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		total, scrollPos, maxLines int
		start, end                 int
		desc                       string
	}{
		{0, 0, 5, 0, 0, "空列表"},
		{3, 0, 5, 0, 3, "不足一页显示全部"},
		{10, 0, 5, 5, 10, "滚动位置0显示最后一页"},
		{10, 5, 5, 0, 5, "滚动到顶部显示第一页"},
		{10, 3, 5, 2, 7, "中间窗口"},
	}

	for _, tt := range tests {
		start, end := visibleRange(tt.total, tt.scrollPos, tt.maxLines)
		if start != tt.start || end != tt.end {
			t.Errorf("%s: visibleRange(%d,%d,%d) = (%d,%d), expected (%d,%d)",
				tt.desc, tt.total, tt.scrollPos, tt.maxLines, start, end, tt.start, tt.end)
		}
	}
}

func TestAdjustScrollForCursor(t *testing.T) {
	tests := []struct {
		total, cursor, scrollPos, maxLines int
		expected                           int
		desc                               string
	}{
		{3, 1, 0, 5, 0, "不足一页不滚动"},
		{10, 0, 0, 5, 5, "光标在第一条时滚到顶部"},
		{10, 9, 5, 5, 0, "光标在最后一条时滚到底部"},
		{10, 3, 3, 5, 3, "光标在可见范围内不调整"},
		{10, 1, 0, 5, 4, "光标越过上边界时调整"},
	}

	for _, tt := range tests {
		result := adjustScrollForCursor(tt.total, tt.cursor, tt.scrollPos, tt.maxLines)
		if result != tt.expected {
			t.Errorf("%s: adjustScrollForCursor(%d,%d,%d,%d) = %d, expected %d",
				tt.desc, tt.total, tt.cursor, tt.scrollPos, tt.maxLines, result, tt.expected)
		}
	}
}
