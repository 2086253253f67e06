package main

import (
	"fmt"
	"strings"
	"time"
)

// ============================================================================
// 调试日志系统
// ============================================================================

// globalModel 全局模型引用，用于调试日志记录
var globalModel *Model

// debugPrint 调试输出函数 - 支持 i18n key
// key 参数是 i18n 键名，如 "debug.search.staleResult"
// args 是格式化参数，将替换翻译文本中的 %s, %d 等占位符
func debugPrint(key string, args ...any) {
	if globalModel != nil && globalModel.debugMode {
		timestamp := time.Now().Format("15:04:05")
		format := getDebugText(key)
		logMsg := fmt.Sprintf("[%s] %s", timestamp, fmt.Sprintf(format, args...))
		globalModel.addDebugLog(logMsg)
	}
}

// addDebugLog 添加调试日志
func (m *Model) addDebugLog(msg string) {
	m.debugLogs = append(m.debugLogs, msg)

	// 用户在查看历史日志时，滚动位置加1以保持当前查看内容不错位；
	// debugScrollPos == 0 表示在底部，自动跟随最新日志
	if m.debugScrollPos > 0 {
		m.debugScrollPos++
	}
}

// ============================================================================
// 调试日志滚动控制
// ============================================================================

// scrollDebugUp 向上滚动调试日志
func (m *Model) scrollDebugUp() {
	maxScroll := len(m.debugLogs) - 1
	if m.debugScrollPos < maxScroll {
		m.debugScrollPos++
	}
}

// scrollDebugDown 向下滚动调试日志
func (m *Model) scrollDebugDown() {
	if m.debugScrollPos > 0 {
		m.debugScrollPos--
	}
}

// ============================================================================
// 调试面板渲染
// ============================================================================

// renderDebugPanel 渲染调试面板
func (m *Model) renderDebugPanel() string {
	if !m.debugMode {
		return ""
	}

	// 显示最多8条完整日志，支持滚动查看
	maxDebugLines := 8

	if len(m.debugLogs) == 0 {
		return "\n🔧 " + m.getText("debug.panel.empty")
	}

	s := "\n" + strings.Repeat("=", 80) + "\n"

	totalLogs := len(m.debugLogs)
	currentPos := totalLogs - m.debugScrollPos
	s += fmt.Sprintf("🔧 %s (%d/%d) [PageUp/PageDown]\n", m.getText("debug.panel.title"), currentPos, totalLogs)
	s += strings.Repeat("-", 80) + "\n"

	// 根据滚动位置计算要显示的日志范围
	endIndex := totalLogs - m.debugScrollPos
	startIndex := endIndex - maxDebugLines
	if startIndex < 0 {
		startIndex = 0
	}

	for i := startIndex; i < endIndex; i++ {
		prefix := ""
		if i == endIndex-1 && m.debugScrollPos == 0 {
			prefix = "→ " // 标记最新日志
		}
		s += prefix + m.debugLogs[i] + "\n"
	}

	s += strings.Repeat("=", 80)

	return s
}
