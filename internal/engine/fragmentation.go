package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cogaint/velocity-demo/internal/types"
)

const (
	aiSource       = "OpenAI GPT-4"
	fallbackSource = "Cogaint Logic Engine"
)

// AnalyzeFragmentation shows how one product fragments across business
// systems and the unified view recovered from it. The analysis uses AI when
// available and degrades to pattern matching otherwise.
func (e *Engine) AnalyzeFragmentation(ctx context.Context, companyKey string) (*types.FragmentationResult, error) {
	company, err := e.company(companyKey)
	if err != nil {
		return nil, err
	}

	sku := company.SKUs[0]

	fragmented := map[string]string{
		"erp_system":    sku.ERP,
		"wms_system":    sku.WMS,
		"shopify_store": sku.Shopify,
		"product_name":  sku.Name,
	}

	var analysis *types.SKUAnalysis
	source := fallbackSource
	if e.ai != nil {
		analysis, err = e.ai.AnalyzeSKU(ctx, sku)
		if err != nil {
			slog.Warn("AI SKU analysis failed, using fallback", "error", err, "company", companyKey)
			analysis = fallbackSKUAnalysis(sku)
		} else {
			source = aiSource
		}
	} else {
		analysis = fallbackSKUAnalysis(sku)
	}
	analysis.Source = source

	return &types.FragmentationResult{
		FragmentedData: fragmented,
		Analysis:       *analysis,
		TimeSaved:      "2+ hours -> 30 seconds",
		Accuracy:       "95%+ with AI vs 60% manual",
		AIStatus:       e.AIStatus(),
	}, nil
}

// fallbackSKUAnalysis matches identifier fragments against the product name
// when no AI client is available.
func fallbackSKUAnalysis(sku types.SKU) *types.SKUAnalysis {
	lowerName := strings.ToLower(sku.Name)

	confidence := 85
	reasoning := fmt.Sprintf("Pattern analysis of %q:", sku.Name)

	if containsAnyPart(lowerName, strings.Split(strings.ToLower(sku.ERP), "-")) {
		confidence += 5
		reasoning += " ERP code contains product identifiers."
	}

	if containsAnyPart(lowerName, strings.Split(strings.ToLower(sku.WMS), "_")) {
		confidence += 5
		reasoning += " WMS code follows logical naming convention."
	}

	if containsAnyPart(sku.Shopify, strings.Fields(lowerName)) {
		confidence += 5
		reasoning += " Shopify URL matches product name structure."
	}

	if confidence > 98 {
		confidence = 98
	}

	riskFactors := []string{}
	if confidence <= 90 {
		riskFactors = append(riskFactors, "Manual verification recommended")
	}

	return &types.SKUAnalysis{
		SameProduct:     true,
		Confidence:      confidence,
		UnifiedName:     sku.Name,
		Reasoning:       reasoning + fmt.Sprintf(" All identifiers consistently reference the same %s.", sku.Name),
		RiskFactors:     riskFactors,
		PatternAnalysis: "Detected consistent product patterns across 3 systems",
	}
}

// containsAnyPart reports whether any non-empty part occurs in s.
func containsAnyPart(s string, parts []string) bool {
	for _, part := range parts {
		if part != "" && strings.Contains(s, part) {
			return true
		}
	}
	return false
}
