package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/cogaint/velocity-demo/internal/types"
)

// AnalyzeSKU asks the model whether identifiers from different business
// systems refer to the same product.
func (c *Client) AnalyzeSKU(ctx context.Context, sku types.SKU) (*types.SKUAnalysis, error) {
	prompt := fmt.Sprintf(`Analyze these product identifiers from different business systems and determine if they refer to the same product:

ERP SKU: %s
WMS SKU: %s
Shopify SKU: %s
Product Name: %s

Respond with valid JSON only:
{
    "same_product": true,
    "confidence": 95,
    "unified_name": "suggested product name",
    "reasoning": "detailed explanation of why these match",
    "risk_factors": ["any concerns"],
    "pattern_analysis": "analysis of naming patterns"
}`, sku.ERP, sku.WMS, sku.Shopify, sku.Name)

	raw, err := c.complete(ctx, prompt, 500)
	if err != nil {
		return nil, err
	}

	var analysis types.SKUAnalysis
	if err := json.Unmarshal(stripCodeFence(raw), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode SKU analysis: %w", err)
	}

	return &analysis, nil
}

// BusinessInsight asks the model for a risk adjustment on a company profile.
func (c *Client) BusinessInsight(ctx context.Context, company types.Company) (*types.Insight, error) {
	prompt := fmt.Sprintf(`Analyze this business profile and provide risk insights:
Company: %s
Industry: %s
Revenue: $%d
Inventory Turns: %gx
Years Operating: %d

Provide a JSON response with:
{
    "risk_adjustment": -10 to +10,
    "key_insight": "one sentence insight"
}`, company.Name, company.Industry, company.Revenue, company.InventoryTurns, company.YearsOperating)

	raw, err := c.complete(ctx, prompt, 100)
	if err != nil {
		return nil, err
	}

	var insight types.Insight
	if err := json.Unmarshal(stripCodeFence(raw), &insight); err != nil {
		return nil, fmt.Errorf("failed to decode business insight: %w", err)
	}

	return &insight, nil
}

// complete runs a single low-temperature chat completion
func (c *Client) complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: param.Opt[float64]{Value: 0.1},
		MaxTokens:   param.Opt[int64]{Value: maxTokens},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(res.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return res.Choices[0].Message.Content, nil
}

// stripCodeFence removes the markdown fence the model sometimes wraps JSON
// payloads in despite the "valid JSON only" instruction.
func stripCodeFence(s string) []byte {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return []byte(strings.TrimSpace(s))
}
