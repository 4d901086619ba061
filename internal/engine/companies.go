package engine

import "github.com/cogaint/velocity-demo/internal/types"

// demoCompanyOrder preserves the presentation order of the demo data set.
var demoCompanyOrder = []string{"velocity-snacks", "healthy-foods", "gourmet-sauces"}

// demoCompanies returns the built-in demo data set: a high performer, a
// medium performer and a struggling company.
func demoCompanies() map[string]types.Company {
	return map[string]types.Company{
		"velocity-snacks": {
			Key:            "velocity-snacks",
			Name:           "VelocitySnacks Co",
			Industry:       "Food & Beverage",
			Revenue:        3_500_000,
			InventoryTurns: 12,
			YearsOperating: 4,
			Description:    "Fast-growing protein bar company with strong D2C sales",
			SKUs: []types.SKU{
				{
					Name:            "Chocolate Protein Bar",
					ERP:             "PB-CHOC-001",
					WMS:             "PROTBAR_CHOC_12PK",
					Shopify:         "protein-bar-chocolate",
					MonthlyVelocity: 2500,
					MarginPercent:   35,
				},
				{
					Name:            "Vanilla Protein Bar",
					ERP:             "PB-VAN-001",
					WMS:             "PROTBAR_VAN_12PK",
					Shopify:         "protein-bar-vanilla",
					MonthlyVelocity: 1800,
					MarginPercent:   35,
				},
			},
		},
		"healthy-foods": {
			Key:            "healthy-foods",
			Name:           "HealthyFoods Inc",
			Industry:       "Supplements",
			Revenue:        1_200_000,
			InventoryTurns: 6,
			YearsOperating: 2,
			Description:    "Growing supplement brand with seasonal patterns",
			SKUs: []types.SKU{
				{
					Name:            "Vitamin D3 Supplement",
					ERP:             "VD3-5000-60",
					WMS:             "VITAMIN_D3_60CT",
					Shopify:         "vitamin-d3-5000iu",
					MonthlyVelocity: 800,
					MarginPercent:   45,
				},
			},
		},
		"gourmet-sauces": {
			Key:            "gourmet-sauces",
			Name:           "GourmetSauces Ltd",
			Industry:       "Specialty Foods",
			Revenue:        800_000,
			InventoryTurns: 2.5,
			YearsOperating: 6,
			Description:    "Premium sauce maker with inventory challenges",
			SKUs: []types.SKU{
				{
					Name:            "Truffle Pasta Sauce",
					ERP:             "GPS-TRUF-16",
					WMS:             "SAUCE_TRUFFLE_16OZ",
					Shopify:         "gourmet-truffle-sauce",
					MonthlyVelocity: 120,
					MarginPercent:   25,
				},
			},
		},
	}
}
