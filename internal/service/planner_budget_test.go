package service

import (
	"testing"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

func TestEstimateBudget_TotalsAreConsistent(t *testing.T) {
	cases := []struct {
		name        string
		destination string
		tier        string
	}{
		{"budget tier in Paris", "Paris, France", domain.BudgetTierBudget},
		{"mid-range in unknown city", "Smallville, USA", domain.BudgetTierMidRange},
		{"luxury in Tokyo", "Tokyo, Japan", domain.BudgetTierLuxury},
		{"unknown tier defaults to mid-range", "Rome, Italy", "Extravagant"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			budget := estimateBudget(tc.destination, tc.tier)

			foodSum := budget.Food.Breakfast + budget.Food.Lunch + budget.Food.Dinner + budget.Food.Snacks
			if budget.Food.Total != foodSum {
				t.Errorf("food total %d, sum of items %d", budget.Food.Total, foodSum)
			}
			transportSum := budget.Transportation.PublicTransit + budget.Transportation.Taxi
			if budget.Transportation.Total != transportSum {
				t.Errorf("transportation total %d, sum of items %d", budget.Transportation.Total, transportSum)
			}
			if budget.Activities.Total != budget.Activities.Paid+budget.Activities.Free {
				t.Errorf("activities total %d, paid %d free %d", budget.Activities.Total, budget.Activities.Paid, budget.Activities.Free)
			}
			categorySum := budget.Food.Total + budget.Transportation.Total + budget.Activities.Total + budget.Miscellaneous
			if budget.DailyTotal != categorySum {
				t.Errorf("daily total %d, sum of categories %d", budget.DailyTotal, categorySum)
			}
		})
	}
}

func TestEstimateBudget_AppliesCityFactorAndTier(t *testing.T) {
	// New York factor 1.8, luxury multiplier 2.0: breakfast 10 * 3.6 = 36.
	budget := estimateBudget("New York, USA", domain.BudgetTierLuxury)
	if budget.Food.Breakfast != 36 {
		t.Fatalf("expected breakfast 36, got %d", budget.Food.Breakfast)
	}

	// Bangkok factor 0.6, budget multiplier 0.7: lunch 15 * 0.42 = 6.3 -> 6.
	budget = estimateBudget("Bangkok, Thailand", domain.BudgetTierBudget)
	if budget.Food.Lunch != 6 {
		t.Fatalf("expected lunch 6, got %d", budget.Food.Lunch)
	}
}

func TestEstimateBudget_UnknownCityUsesBaseTable(t *testing.T) {
	budget := estimateBudget("Nowhere", domain.BudgetTierMidRange)
	if budget.Food.Total != 55 {
		t.Fatalf("expected base food total 55, got %d", budget.Food.Total)
	}
	if budget.DailyTotal != 130 {
		t.Fatalf("expected base daily total 130, got %d", budget.DailyTotal)
	}
}

func TestBackfillBudget_FillsMissingFigures(t *testing.T) {
	var budget domain.BudgetBreakdown
	backfillBudget(&budget)

	if budget.Food.Breakfast != 15 || budget.Food.Lunch != 20 || budget.Food.Dinner != 35 {
		t.Fatalf("unexpected food backfill: %+v", budget.Food)
	}
	if budget.Food.Total != 70 {
		t.Fatalf("expected food total 70, got %d", budget.Food.Total)
	}
	if budget.Transportation.Total != 35 {
		t.Fatalf("expected transportation total 35, got %d", budget.Transportation.Total)
	}
	if budget.DailyTotal != 160 {
		t.Fatalf("expected daily total 160, got %d", budget.DailyTotal)
	}
}

func TestBackfillBudget_KeepsSuppliedFigures(t *testing.T) {
	budget := domain.BudgetBreakdown{
		Food:       domain.FoodBudget{Breakfast: 8, Lunch: 12, Dinner: 22, Snacks: 4, Total: 46},
		DailyTotal: 99,
	}
	backfillBudget(&budget)

	if budget.Food.Breakfast != 8 || budget.Food.Total != 46 {
		t.Fatalf("expected supplied food figures to survive, got %+v", budget.Food)
	}
	if budget.DailyTotal != 99 {
		t.Fatalf("expected supplied daily total to survive, got %d", budget.DailyTotal)
	}
}
