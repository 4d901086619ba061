package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/cogaint/velocity-demo/internal/types"
)

//go:generate mockgen -source=engine.go -destination=mock_aianalyzer.go -package=engine AIAnalyzer

// AIAnalyzer defines the AI-backed analysis operations available when a
// client was bootstrapped successfully.
type AIAnalyzer interface {
	AnalyzeSKU(ctx context.Context, sku types.SKU) (*types.SKUAnalysis, error)
	BusinessInsight(ctx context.Context, company types.Company) (*types.Insight, error)
}

var (
	// ErrUnknownCompany is returned when a company key has no demo data.
	ErrUnknownCompany = errors.New("unknown company")

	// ErrInvalidApplication is returned when applicant data cannot be scored.
	ErrInvalidApplication = errors.New("invalid application")
)

// Engine drives the lending demo: SKU fragmentation analysis, business
// scoring and rate quoting. AI-backed paths fall back to built-in heuristics
// whenever ai is nil or a call fails.
type Engine struct {
	ai        AIAnalyzer // nil when AI features are disabled
	aiReason  string
	companies map[string]types.Company
	order     []string
}

// New creates an engine. ai may be nil; aiReason describes why AI is
// unavailable and is surfaced by AIStatus.
func New(ai AIAnalyzer, aiReason string) *Engine {
	return &Engine{
		ai:        ai,
		aiReason:  aiReason,
		companies: demoCompanies(),
		order:     demoCompanyOrder,
	}
}

// AIStatus reports whether AI-backed analysis is available.
func (e *Engine) AIStatus() types.AIStatus {
	if e.ai != nil {
		return types.AIStatus{Status: "enabled", Message: "AI features fully operational"}
	}
	return types.AIStatus{Status: "disabled", Message: "AI disabled: " + e.aiReason}
}

// Companies lists the demo companies in presentation order.
func (e *Engine) Companies() []types.CompanySummary {
	summaries := make([]types.CompanySummary, 0, len(e.order))
	for _, key := range e.order {
		c := e.companies[key]
		summaries = append(summaries, types.CompanySummary{
			Key:            c.Key,
			Name:           c.Name,
			Industry:       c.Industry,
			Revenue:        c.Revenue,
			InventoryTurns: c.InventoryTurns,
			YearsOperating: c.YearsOperating,
			Description:    c.Description,
		})
	}
	return summaries
}

func (e *Engine) company(key string) (types.Company, error) {
	c, ok := e.companies[key]
	if !ok {
		return types.Company{}, fmt.Errorf("%w: %q", ErrUnknownCompany, key)
	}
	return c, nil
}
