package llm

import (
	"encoding/json"
	"testing"

	"github.com/cogaint/velocity-demo/internal/types"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain JSON passes through",
			raw:  `{"same_product": true}`,
			want: `{"same_product": true}`,
		},
		{
			name: "json fence is removed",
			raw:  "```json\n{\"same_product\": true}\n```",
			want: `{"same_product": true}`,
		},
		{
			name: "bare fence is removed",
			raw:  "```\n{\"same_product\": true}\n```",
			want: `{"same_product": true}`,
		},
		{
			name: "surrounding whitespace is trimmed",
			raw:  "  \n{\"same_product\": true}\n ",
			want: `{"same_product": true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(stripCodeFence(tt.raw))
			if got != tt.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStripCodeFence_DecodesFencedAnalysis(t *testing.T) {
	raw := "```json\n" + `{
    "same_product": true,
    "confidence": 95,
    "unified_name": "Chocolate Protein Bar",
    "reasoning": "All identifiers share the CHOC token",
    "risk_factors": [],
    "pattern_analysis": "Consistent abbreviation scheme"
}` + "\n```"

	var analysis types.SKUAnalysis
	if err := json.Unmarshal(stripCodeFence(raw), &analysis); err != nil {
		t.Fatalf("json.Unmarshal() failed on fenced payload: %v", err)
	}

	if !analysis.SameProduct {
		t.Error("SameProduct = false, want true")
	}
	if analysis.Confidence != 95 {
		t.Errorf("Confidence = %d, want 95", analysis.Confidence)
	}
	if analysis.UnifiedName != "Chocolate Protein Bar" {
		t.Errorf("UnifiedName = %q, want %q", analysis.UnifiedName, "Chocolate Protein Bar")
	}
}
