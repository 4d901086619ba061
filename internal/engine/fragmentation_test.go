package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/cogaint/velocity-demo/internal/types"
)

func TestEngine_AnalyzeFragmentation(t *testing.T) {
	tests := []struct {
		name           string
		companyKey     string
		useAI          bool
		setupMocks     func(*MockAIAnalyzer)
		wantErr        error
		wantSource     string
		wantUnified    string
		wantConfidence int
	}{
		{
			name:       "AI analysis when available",
			companyKey: "velocity-snacks",
			useAI:      true,
			setupMocks: func(ai *MockAIAnalyzer) {
				ai.EXPECT().
					AnalyzeSKU(gomock.Any(), gomock.Any()).
					Return(&types.SKUAnalysis{
						SameProduct: true,
						Confidence:  95,
						UnifiedName: "Chocolate Protein Bar",
						Reasoning:   "All identifiers share the CHOC token",
					}, nil)
			},
			wantSource:     "OpenAI GPT-4",
			wantUnified:    "Chocolate Protein Bar",
			wantConfidence: 95,
		},
		{
			name:       "AI failure degrades to pattern matching",
			companyKey: "velocity-snacks",
			useAI:      true,
			setupMocks: func(ai *MockAIAnalyzer) {
				ai.EXPECT().
					AnalyzeSKU(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection reset"))
			},
			wantSource:     "Cogaint Logic Engine",
			wantUnified:    "Chocolate Protein Bar",
			wantConfidence: 98,
		},
		{
			name:           "disabled AI uses pattern matching",
			companyKey:     "velocity-snacks",
			wantSource:     "Cogaint Logic Engine",
			wantUnified:    "Chocolate Protein Bar",
			wantConfidence: 98,
		},
		{
			name:       "unknown company",
			companyKey: "missing-co",
			wantErr:    ErrUnknownCompany,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var ai AIAnalyzer
			if tt.useAI {
				mockAI := NewMockAIAnalyzer(ctrl)
				if tt.setupMocks != nil {
					tt.setupMocks(mockAI)
				}
				ai = mockAI
			}

			eng := New(ai, "no OPENAI_API_KEY found in environment variables")

			result, err := eng.AnalyzeFragmentation(context.Background(), tt.companyKey)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("AnalyzeFragmentation() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("AnalyzeFragmentation() unexpected error: %v", err)
			}

			if result.Analysis.Source != tt.wantSource {
				t.Errorf("AnalyzeFragmentation() Source = %q, want %q", result.Analysis.Source, tt.wantSource)
			}
			if result.Analysis.UnifiedName != tt.wantUnified {
				t.Errorf("AnalyzeFragmentation() UnifiedName = %q, want %q", result.Analysis.UnifiedName, tt.wantUnified)
			}
			if result.Analysis.Confidence != tt.wantConfidence {
				t.Errorf("AnalyzeFragmentation() Confidence = %d, want %d", result.Analysis.Confidence, tt.wantConfidence)
			}

			if len(result.FragmentedData) != 4 {
				t.Errorf("AnalyzeFragmentation() FragmentedData has %d entries, want 4", len(result.FragmentedData))
			}
			if result.FragmentedData["erp_system"] == "" {
				t.Error("AnalyzeFragmentation() FragmentedData missing erp_system")
			}
		})
	}
}

func TestFallbackSKUAnalysis(t *testing.T) {
	t.Run("consistent identifiers reach the confidence cap", func(t *testing.T) {
		sku := types.SKU{
			Name:    "Chocolate Protein Bar",
			ERP:     "PB-CHOC-001",
			WMS:     "PROTBAR_CHOC_12PK",
			Shopify: "protein-bar-chocolate",
		}

		analysis := fallbackSKUAnalysis(sku)

		if !analysis.SameProduct {
			t.Error("fallbackSKUAnalysis() SameProduct = false, want true")
		}
		// 85 base + 3x5 pattern matches, capped at 98.
		if analysis.Confidence != 98 {
			t.Errorf("fallbackSKUAnalysis() Confidence = %d, want 98", analysis.Confidence)
		}
		if len(analysis.RiskFactors) != 0 {
			t.Errorf("fallbackSKUAnalysis() RiskFactors = %v, want none above 90 confidence", analysis.RiskFactors)
		}
		if !strings.Contains(analysis.Reasoning, "ERP code contains product identifiers") {
			t.Errorf("fallbackSKUAnalysis() Reasoning = %q, missing ERP match note", analysis.Reasoning)
		}
	})

	t.Run("unrelated identifiers keep base confidence and flag review", func(t *testing.T) {
		sku := types.SKU{
			Name:    "Widget",
			ERP:     "XX-YY-01",
			WMS:     "AA_BB_CC",
			Shopify: "zz-item",
		}

		analysis := fallbackSKUAnalysis(sku)

		if analysis.Confidence != 85 {
			t.Errorf("fallbackSKUAnalysis() Confidence = %d, want 85", analysis.Confidence)
		}
		if len(analysis.RiskFactors) != 1 || analysis.RiskFactors[0] != "Manual verification recommended" {
			t.Errorf("fallbackSKUAnalysis() RiskFactors = %v, want manual verification flag", analysis.RiskFactors)
		}
	})

	t.Run("unified name is always the product name", func(t *testing.T) {
		sku := types.SKU{
			Name:    "Vitamin D3 Supplement",
			ERP:     "VD3-5000-60",
			WMS:     "VITAMIN_D3_60CT",
			Shopify: "vitamin-d3-5000iu",
		}

		analysis := fallbackSKUAnalysis(sku)
		if analysis.UnifiedName != sku.Name {
			t.Errorf("fallbackSKUAnalysis() UnifiedName = %q, want %q", analysis.UnifiedName, sku.Name)
		}
	})
}
