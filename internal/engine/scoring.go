package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cogaint/velocity-demo/internal/types"
)

// ScoreCompany computes the lending score, recommended rate and decision for
// a demo company.
func (e *Engine) ScoreCompany(ctx context.Context, companyKey string) (*types.ScoreResult, error) {
	company, err := e.company(companyKey)
	if err != nil {
		return nil, err
	}

	score := 50
	factors := []string{}

	// Inventory velocity carries the largest weight.
	turns := company.InventoryTurns
	var velocityBoost int
	switch {
	case turns > 8:
		velocityBoost = 25
		factors = append(factors, fmt.Sprintf("Excellent inventory turns (%gx): +%d", turns, velocityBoost))
	case turns > 4:
		velocityBoost = 15
		factors = append(factors, fmt.Sprintf("Good inventory turns (%gx): +%d", turns, velocityBoost))
	case turns > 2:
		velocityBoost = 5
		factors = append(factors, fmt.Sprintf("Moderate inventory turns (%gx): +%d", turns, velocityBoost))
	default:
		velocityBoost = -15
		factors = append(factors, fmt.Sprintf("Slow inventory turns (%gx): %d", turns, velocityBoost))
	}
	score += velocityBoost

	// Revenue size.
	var revenueBoost int
	switch {
	case company.Revenue > 5_000_000:
		revenueBoost = 15
		factors = append(factors, fmt.Sprintf("Large revenue ($%d): +%d", company.Revenue, revenueBoost))
	case company.Revenue > 1_000_000:
		revenueBoost = 10
		factors = append(factors, fmt.Sprintf("Good revenue ($%d): +%d", company.Revenue, revenueBoost))
	case company.Revenue < 500_000:
		revenueBoost = -10
		factors = append(factors, fmt.Sprintf("Small revenue ($%d): %d", company.Revenue, revenueBoost))
	default:
		revenueBoost = 5
		factors = append(factors, fmt.Sprintf("Moderate revenue ($%d): +%d", company.Revenue, revenueBoost))
	}
	score += revenueBoost

	// Industry risk.
	industryBoost, industryReason := industryRisk(company.Industry)
	score += industryBoost
	factors = append(factors, fmt.Sprintf("Industry (%s): %+d - %s", company.Industry, industryBoost, industryReason))

	// Operating experience.
	var experienceBoost int
	switch {
	case company.YearsOperating > 5:
		experienceBoost = 10
		factors = append(factors, fmt.Sprintf("Experienced operator (%d years): +%d", company.YearsOperating, experienceBoost))
	case company.YearsOperating > 2:
		experienceBoost = 5
		factors = append(factors, fmt.Sprintf("Established business (%d years): +%d", company.YearsOperating, experienceBoost))
	default:
		experienceBoost = -5
		factors = append(factors, fmt.Sprintf("Early stage (%d years): %d", company.YearsOperating, experienceBoost))
	}
	score += experienceBoost

	// AI insight adjustment.
	insight := e.businessInsight(ctx, company)
	score += insight.Adjustment
	factors = append(factors, insight.Factor)

	final := clampScore(score)

	return &types.ScoreResult{
		FinalScore:      final,
		Factors:         factors,
		RiskCategory:    riskCategory(final),
		RecommendedRate: scoreToRate(final),
		Decision:        decision(final),
		AIStatus:        e.AIStatus(),
	}, nil
}

// QuoteRate scores applicant-supplied data with the simplified intake model
// (inventory velocity and revenue only) and quotes a rate.
func (e *Engine) QuoteRate(ctx context.Context, app types.Application) (*types.RateQuote, error) {
	if app.Revenue <= 0 {
		return nil, fmt.Errorf("%w: revenue must be positive", ErrInvalidApplication)
	}

	turns := app.InventoryTurns
	if turns == 0 && app.InventoryValue > 0 {
		// Approximate turns from COGS at a 70% revenue ratio when the
		// applicant supplied an inventory value instead.
		turns = float64(app.Revenue) * 0.7 / float64(app.InventoryValue)
	}
	if turns == 0 {
		turns = 4.0
	}

	score := 50

	switch {
	case turns > 8:
		score += 25
	case turns > 4:
		score += 15
	case turns < 2:
		score -= 15
	}

	switch {
	case app.Revenue > 5_000_000:
		score += 15
	case app.Revenue > 1_000_000:
		score += 10
	case app.Revenue < 500_000:
		score -= 10
	}

	final := clampScore(score)

	return &types.RateQuote{
		Score:     final,
		Rate:      scoreToRate(final),
		Decision:  decision(final),
		NextSteps: "Contact us at cogaint.com to proceed",
		AIStatus:  e.AIStatus(),
	}, nil
}

type insightAdjustment struct {
	Adjustment int
	Factor     string
}

// businessInsight returns the AI risk adjustment for a company, degrading to
// the heuristic read when AI is unavailable or the call fails.
func (e *Engine) businessInsight(ctx context.Context, company types.Company) insightAdjustment {
	if e.ai != nil {
		insight, err := e.ai.BusinessInsight(ctx, company)
		if err == nil {
			return insightAdjustment{
				Adjustment: insight.Adjustment,
				Factor:     "AI insight: " + insight.Summary,
			}
		}
		slog.Warn("AI business insight failed, using fallback", "error", err, "company", company.Name)
	}
	return fallbackInsight(company)
}

func fallbackInsight(company types.Company) insightAdjustment {
	switch {
	case company.InventoryTurns > 8:
		return insightAdjustment{Adjustment: 10, Factor: "Analysis: strong operational efficiency indicators"}
	case company.InventoryTurns < 3:
		return insightAdjustment{Adjustment: -10, Factor: "Analysis: inventory management concerns detected"}
	default:
		return insightAdjustment{Adjustment: 0, Factor: "Analysis: standard operational patterns detected"}
	}
}

func industryRisk(industry string) (int, string) {
	switch industry {
	case "Food & Beverage":
		return 10, "Low risk, stable demand"
	case "Supplements":
		return 5, "Moderate risk, growing market"
	case "Specialty Foods":
		return -5, "Higher risk, niche market"
	case "Beauty & Personal Care":
		return 0, "Moderate risk, competitive"
	default:
		return 0, "Standard industry risk"
	}
}

func riskCategory(score int) string {
	switch {
	case score >= 75:
		return "Low Risk"
	case score >= 60:
		return "Medium Risk"
	case score >= 45:
		return "High Risk"
	default:
		return "Very High Risk"
	}
}

// scoreToRate maps a score to the offered annual interest rate.
func scoreToRate(score int) float64 {
	switch {
	case score >= 80:
		return 10.5
	case score >= 70:
		return 12.5
	case score >= 60:
		return 15.0
	case score >= 50:
		return 17.5
	case score >= 40:
		return 20.0
	default:
		return 22.0
	}
}

func decision(score int) string {
	switch {
	case score >= 60:
		return "APPROVED"
	case score >= 45:
		return "APPROVED with conditions"
	case score >= 30:
		return "REFER for manual review"
	default:
		return "DECLINED"
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
