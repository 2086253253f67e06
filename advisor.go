package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"google.golang.org/genai"
)

// ============================================================================
// AI选股顾问
// ============================================================================

// Advisor AI选股顾问接口
// 给定非空查询文本，返回候选股票列表和引用来源，失败时返回错误
type Advisor interface {
	Recommend(ctx context.Context, query string) (*Recommendation, error)
}

// GeminiAdvisor 基于 Gemini + Google搜索grounding 的顾问实现
type GeminiAdvisor struct {
	client *genai.Client
	model  string
}

// stockPayload 模型返回JSON中单只股票的结构
type stockPayload struct {
	Ticker          string `json:"ticker"`
	CompanyName     string `json:"companyName"`
	GrowthPotential string `json:"growthPotential"`
	PublicSentiment string `json:"publicSentiment"`
}

// advisorPrompt 选股提示词模板
// Gemini 的内置grounding工具不能与结构化输出schema同时使用，
// 所以JSON格式在提示词里约定，再从响应文本中解析
const advisorPrompt = `You are a financial analyst assistant. The user is researching this market sector or trend: %q

Using current information from the web, identify 5 to 7 publicly traded companies that are strong candidates in this area.

Respond with a JSON array only, no other text. Each element:
{
  "ticker": "stock ticker symbol",
  "companyName": "full company name",
  "growthPotential": "2-3 sentences on growth potential",
  "publicSentiment": "2-3 sentences on current public sentiment"
}`

// NewGeminiAdvisor 创建 Gemini 顾问
// 优先使用配置中的密钥，为空时回退到 GEMINI_API_KEY 环境变量
func NewGeminiAdvisor(ctx context.Context, cfg AIConfig) (*GeminiAdvisor, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("missing Gemini API key: set ai.api_key in %s or the GEMINI_API_KEY environment variable", configFile)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiAdvisor{client: client, model: model}, nil
}

// Recommend 发起一次选股查询
func (a *GeminiAdvisor) Recommend(ctx context.Context, query string) (*Recommendation, error) {
	logInfo("log.advisor.requestStart", a.model, query)

	resp, err := a.client.Models.GenerateContent(ctx,
		a.model,
		genai.Text(fmt.Sprintf(advisorPrompt, query)),
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			Temperature: genai.Ptr[float32](0.3),
		},
	)
	if err != nil {
		logError("log.advisor.requestFailed", err)
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	logDebug("log.advisor.responseLength", len(text))
	if strings.TrimSpace(text) == "" {
		logError("log.advisor.emptyResponse")
		return nil, fmt.Errorf("empty response from model")
	}

	stocks, err := parseStockList(text)
	if err != nil {
		logError("log.advisor.parseFailed", err)
		return nil, err
	}

	sources := extractSources(resp)
	logInfo("log.advisor.requestDone", len(stocks), len(sources))

	return &Recommendation{Stocks: stocks, Sources: sources}, nil
}

// ============================================================================
// 响应解析
// ============================================================================

// extractJSONBlock 从模型响应文本中提取JSON数组
// 兼容 ```json 代码块包裹和数组前后夹杂说明文字的情况
func extractJSONBlock(text string) string {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// parseStockList 解析模型返回的股票JSON数组
// 对文本做NFC归一化，代码统一大写并去重，跳过无代码的条目
func parseStockList(text string) ([]Stock, error) {
	block := extractJSONBlock(text)
	if block == "" {
		return nil, fmt.Errorf("no JSON array found in model response")
	}

	var payload []stockPayload
	if err := json.Unmarshal([]byte(block), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse stock list: %w", err)
	}

	seen := make(map[string]bool)
	stocks := make([]Stock, 0, len(payload))
	for _, p := range payload {
		ticker := normalizeTicker(p.Ticker)
		if ticker == "" || seen[ticker] {
			continue
		}
		seen[ticker] = true
		stocks = append(stocks, Stock{
			Ticker:          ticker,
			CompanyName:     norm.NFC.String(strings.TrimSpace(p.CompanyName)),
			GrowthPotential: norm.NFC.String(strings.TrimSpace(p.GrowthPotential)),
			PublicSentiment: norm.NFC.String(strings.TrimSpace(p.PublicSentiment)),
		})
	}

	return stocks, nil
}

// extractSources 从grounding元数据中提取引用来源
// 来源不做唯一性约束，只跳过没有URI的条目
func extractSources(resp *genai.GenerateContentResponse) []Source {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}

	metadata := resp.Candidates[0].GroundingMetadata
	if metadata == nil {
		return nil
	}

	var sources []Source
	for _, chunk := range metadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = chunk.Web.URI
		}
		sources = append(sources, Source{URI: chunk.Web.URI, Title: title})
	}

	return sources
}
