package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// ============================================================================
// 高亮颜色
// ============================================================================

// highlightColors go-pretty 支持的高亮颜色名称映射
var highlightColors = map[string]text.Color{
	"black":   text.FgBlack,
	"red":     text.FgRed,
	"green":   text.FgGreen,
	"yellow":  text.FgYellow,
	"blue":    text.FgBlue,
	"magenta": text.FgMagenta,
	"cyan":    text.FgCyan,
	"white":   text.FgWhite,
}

// resolveHighlightColor 解析配置中的颜色名称，无效时回退到默认色
func resolveHighlightColor(configColor, defaultColor string) text.Color {
	name := strings.ToLower(configColor)
	if color, exists := highlightColors[name]; exists {
		return color
	}
	if color, exists := highlightColors[strings.ToLower(defaultColor)]; exists {
		return color
	}
	return text.FgYellow
}

// formatTickerWithSavedHighlight 格式化股票代码（已收藏的股票高亮显示）
func (m *Model) formatTickerWithSavedHighlight(ticker string) string {
	if m.store != nil && m.store.Contains(ticker) {
		color := resolveHighlightColor(m.config.Display.SavedHighlight, "yellow")
		return color.Sprint(ticker)
	}
	return ticker
}
