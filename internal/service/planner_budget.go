package service

import (
	"math"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

// Budget tier multipliers applied on top of the destination cost factor.
var tierMultipliers = map[string]float64{
	domain.BudgetTierBudget:   0.7,
	domain.BudgetTierMidRange: 1.0,
	domain.BudgetTierLuxury:   2.0,
}

// Relative daily cost of well-known cities against an average destination.
var destinationCostFactors = map[string]float64{
	"Paris":     1.5,
	"Tokyo":     1.7,
	"New York":  1.8,
	"Bangkok":   0.6,
	"London":    1.6,
	"Rome":      1.3,
	"Barcelona": 1.2,
	"Berlin":    1.1,
	"Sydney":    1.4,
	"Dubai":     1.7,
}

// Base per-day figures for a mid-range traveler in an average city, in USD.
const (
	baseBreakfast     = 10
	baseLunch         = 15
	baseDinner        = 25
	baseSnacks        = 5
	basePublicTransit = 10
	baseTaxi          = 20
	basePaidActivity  = 30
	baseMiscellaneous = 15
)

// estimateBudget scales the base table by the destination's cost factor and
// the traveler's budget tier. Each line item is rounded independently;
// category totals are sums of the rounded items, and the daily total is the
// sum of the category totals.
func estimateBudget(destination, budgetTier string) domain.BudgetBreakdown {
	multiplier, ok := tierMultipliers[budgetTier]
	if !ok {
		multiplier = 1.0
	}
	factor, ok := destinationCostFactors[domain.CityOf(destination)]
	if !ok {
		factor = 1.0
	}

	scale := func(base int) int {
		return int(math.Round(float64(base) * factor * multiplier))
	}

	food := domain.FoodBudget{
		Breakfast: scale(baseBreakfast),
		Lunch:     scale(baseLunch),
		Dinner:    scale(baseDinner),
		Snacks:    scale(baseSnacks),
	}
	food.Total = food.Breakfast + food.Lunch + food.Dinner + food.Snacks

	transportation := domain.TransportationBudget{
		PublicTransit: scale(basePublicTransit),
		Taxi:          scale(baseTaxi),
	}
	transportation.Total = transportation.PublicTransit + transportation.Taxi

	activities := domain.ActivitiesBudget{
		Paid:  scale(basePaidActivity),
		Free:  0,
		Total: scale(basePaidActivity),
	}

	miscellaneous := scale(baseMiscellaneous)

	return domain.BudgetBreakdown{
		Food:           food,
		Transportation: transportation,
		Activities:     activities,
		Miscellaneous:  miscellaneous,
		DailyTotal:     food.Total + transportation.Total + activities.Total + miscellaneous,
	}
}

// backfillBudget patches holes in a model-supplied budget with the display
// defaults so the UI never renders a zero.
func backfillBudget(budget *domain.BudgetBreakdown) {
	if budget.Food.Breakfast == 0 {
		budget.Food.Breakfast = 15
	}
	if budget.Food.Lunch == 0 {
		budget.Food.Lunch = 20
	}
	if budget.Food.Dinner == 0 {
		budget.Food.Dinner = 35
	}
	if budget.Food.Total == 0 {
		budget.Food.Total = 70
	}
	if budget.Transportation.PublicTransit == 0 {
		budget.Transportation.PublicTransit = 10
	}
	if budget.Transportation.Taxi == 0 {
		budget.Transportation.Taxi = 25
	}
	if budget.Transportation.Total == 0 {
		budget.Transportation.Total = 35
	}
	if budget.Activities.Paid == 0 {
		budget.Activities.Paid = 40
	}
	budget.Activities.Free = 0
	if budget.Activities.Total == 0 {
		budget.Activities.Total = 40
	}
	if budget.Miscellaneous == 0 {
		budget.Miscellaneous = 15
	}
	if budget.DailyTotal == 0 {
		budget.DailyTotal = 160
	}
}
