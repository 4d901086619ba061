package types

// SKU carries the identifiers a single product has across business systems.
type SKU struct {
	Name            string  `json:"name"`
	ERP             string  `json:"erp"`
	WMS             string  `json:"wms"`
	Shopify         string  `json:"shopify"`
	MonthlyVelocity int     `json:"monthly_velocity"`
	MarginPercent   float64 `json:"margin"`
}

// Company is a demo company profile.
type Company struct {
	Key            string  `json:"key"`
	Name           string  `json:"name"`
	Industry       string  `json:"industry"`
	Revenue        int64   `json:"revenue"`
	InventoryTurns float64 `json:"inventory_turns"`
	YearsOperating int     `json:"years_operating"`
	Description    string  `json:"description"`
	SKUs           []SKU   `json:"skus"`
}

// CompanySummary is the listing view of a demo company.
type CompanySummary struct {
	Key            string  `json:"key"`
	Name           string  `json:"name"`
	Industry       string  `json:"industry"`
	Revenue        int64   `json:"revenue"`
	InventoryTurns float64 `json:"inventory_turns"`
	YearsOperating int     `json:"years_operating"`
	Description    string  `json:"description"`
}

// AIStatus reports whether AI-backed analysis is available.
type AIStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SKUAnalysis is the unified-product view recovered from fragmented identifiers.
type SKUAnalysis struct {
	SameProduct     bool     `json:"same_product"`
	Confidence      int      `json:"confidence"`
	UnifiedName     string   `json:"unified_name"`
	Reasoning       string   `json:"reasoning"`
	RiskFactors     []string `json:"risk_factors"`
	PatternAnalysis string   `json:"pattern_analysis"`
	Source          string   `json:"source,omitempty"`
}

// Insight is a small AI risk read on a company profile.
type Insight struct {
	Adjustment int    `json:"risk_adjustment"`
	Summary    string `json:"key_insight"`
}

// FragmentationResult shows the fragmentation problem and its resolution.
type FragmentationResult struct {
	FragmentedData map[string]string `json:"fragmented_data"`
	Analysis       SKUAnalysis       `json:"analysis"`
	TimeSaved      string            `json:"time_saved"`
	Accuracy       string            `json:"accuracy"`
	AIStatus       AIStatus          `json:"ai_status"`
}

// ScoreResult is the full scoring breakdown for a company.
type ScoreResult struct {
	FinalScore      int      `json:"final_score"`
	Factors         []string `json:"factors"`
	RiskCategory    string   `json:"risk_category"`
	RecommendedRate float64  `json:"recommended_rate"`
	Decision        string   `json:"decision"`
	AIStatus        AIStatus `json:"ai_status"`
}

// Application is applicant-supplied data for a rate quote.
type Application struct {
	CompanyName    string  `json:"company_name,omitempty"`
	Revenue        int64   `json:"revenue"`
	InventoryTurns float64 `json:"inventory_turns,omitempty"`
	InventoryValue int64   `json:"inventory_value,omitempty"`
	Industry       string  `json:"industry,omitempty"`
	YearsOperating int     `json:"years_operating,omitempty"`
}

// RateQuote is the instant quote produced for an application.
type RateQuote struct {
	Score     int      `json:"score"`
	Rate      float64  `json:"rate"`
	Decision  string   `json:"decision"`
	NextSteps string   `json:"next_steps"`
	AIStatus  AIStatus `json:"ai_status"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
