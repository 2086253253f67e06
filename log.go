package main

import "fmt"

// ============================================================================
// 日志函数 - 四个级别
// key 参数是 i18n 键名（如 "log.advisor.requestStart"），
// args 是格式化参数，替换 i18n 文本中的 %s, %d 等占位符
// ============================================================================

// logDebug DEBUG 级别日志 - 详细调试信息
func logDebug(key string, args ...any) {
	writeLog(LogDebug, key, args...)
}

// logInfo INFO 级别日志 - 正常运行信息
func logInfo(key string, args ...any) {
	writeLog(LogInfo, key, args...)
}

// logWarn WARN 级别日志 - 可能的问题
func logWarn(key string, args ...any) {
	writeLog(LogWarn, key, args...)
}

// logError ERROR 级别日志 - 需要关注的错误
func logError(key string, args ...any) {
	writeLog(LogError, key, args...)
}

// writeLog 统一写入入口（日志系统未初始化时静默丢弃）
func writeLog(level LogLevel, key string, args ...any) {
	if globalLogger == nil {
		return
	}

	text := getLogText(key)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}

	globalLogger.Log(level, key, text)
}

// getLogText 获取 i18n 日志文本
// 如果 globalModel 未初始化，返回 key 本身作为后备
func getLogText(key string) string {
	if globalModel != nil {
		return globalModel.getText(key)
	}
	return key
}
