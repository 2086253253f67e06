package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// Config 配置文件持久化
// ============================================================================

// getDefaultConfig 获取默认配置
func getDefaultConfig() Config {
	return Config{
		System: SystemConfig{
			Language:  "en",  // 默认英文
			DebugMode: false, // 调试模式关闭
		},
		Display: DisplayConfig{
			MaxLines:       5,        // 结果卡片每页显示5条
			SavedHighlight: "yellow", // 已收藏股票默认黄色高亮
			TableStyle:     "light",  // 轻量表格样式
		},
		AI: AIConfig{
			Model:          "gemini-2.5-flash",
			APIKey:         "", // 为空时读取 GEMINI_API_KEY
			TimeoutSeconds: 60,
		},
	}
}

// loadConfig 加载配置文件
func loadConfig() Config {
	data, err := os.ReadFile(configFile)
	if err != nil {
		// 如果配置文件不存在，创建默认配置文件
		config := getDefaultConfig()
		saveConfig(config)
		return config
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		// 如果配置文件格式错误，使用默认配置
		return getDefaultConfig()
	}

	// 验证配置的合理性
	if config.Display.MaxLines <= 0 || config.Display.MaxLines > 50 {
		config.Display.MaxLines = 5 // 默认值
	}
	if config.Display.SavedHighlight == "" {
		config.Display.SavedHighlight = "yellow"
	}
	if config.AI.TimeoutSeconds <= 0 {
		config.AI.TimeoutSeconds = 60
	}

	return config
}

// saveConfig 保存配置文件
func saveConfig(config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return err
	}
	return os.WriteFile(configFile, data, 0644)
}
