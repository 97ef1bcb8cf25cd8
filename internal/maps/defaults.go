package maps

import (
	"strings"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

// DefaultTransitDetails is returned when the provider cannot be queried.
func DefaultTransitDetails() domain.TransitDetails {
	return domain.TransitDetails{
		Options: []domain.TransitOption{
			{
				Mode:      "Public Transit",
				Duration:  "Approximately 30-45 minutes",
				Cost:      2.5,
				Route:     "Varies by location",
				Frequency: "Every 10-15 minutes",
			},
			{
				Mode:      "Taxi/Rideshare",
				Duration:  "Approximately 15-25 minutes",
				Cost:      15,
				Route:     "Direct",
				Frequency: "On demand",
			},
			{
				Mode:      "Walking",
				Duration:  "Varies by distance",
				Cost:      0,
				Route:     "Direct",
				Frequency: "Anytime",
			},
		},
		LocalTransitTips: commonTransitTips(),
		AverageCost:      2.5,
	}
}

func commonTransitTips() []string {
	return []string{
		"Buy a daily or weekly transit pass to save money if you plan to use public transportation frequently",
		"Off-peak hours typically have less crowded transit options",
		"Download the local transit app for real-time updates",
	}
}

var cityTransitTips = map[string][]string{
	"London": {
		"Get an Oyster card to save on tube and bus fares",
		"The Tube stops running around midnight, but Night Buses run 24/7",
		"Avoid the Tube during rush hour (8-9:30am and 5-6:30pm)",
	},
	"Paris": {
		"Purchase a carnet of 10 tickets for a discount on metro rides",
		"The Paris Visite pass offers unlimited travel and museum discounts",
		"Metro lines close at 1am on weeknights and 2am on weekends",
	},
	"New York": {
		"MetroCards can be shared between multiple people",
		"Express trains skip local stations - check the subway map",
		"The subway runs 24/7, but service is limited late at night",
	},
	"Tokyo": {
		"Get a Suica or Pasmo card for seamless travel on all Tokyo transit",
		"The Tokyo subway closes around midnight and reopens at 5am",
		"Rush hour trains are extremely crowded - avoid 7:30-9am if possible",
	},
	"Berlin": {
		"Validate your ticket before boarding to avoid fines",
		"The U-Bahn and S-Bahn connect most major attractions",
		"A Berlin WelcomeCard includes public transport and museum discounts",
	},
}

// transitTipsFor prepends city-specific advice to the common tips, capped at
// five entries.
func transitTipsFor(destination string) []string {
	city := strings.TrimSpace(strings.Split(destination, ",")[0])
	tips := append([]string{}, cityTransitTips[city]...)
	tips = append(tips, commonTransitTips()...)
	if len(tips) > 5 {
		tips = tips[:5]
	}
	return tips
}

// DefaultRestaurants is the canned restaurant list used when the places
// lookup is unavailable.
func DefaultRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			Name:       "Local Café",
			Rating:     4.3,
			PriceLevel: 2,
			Vicinity:   "Main Street",
			Types:      []string{"cafe", "breakfast", "coffee"},
			OpenNow:    true,
		},
		{
			Name:       "City Bistro",
			Rating:     4.5,
			PriceLevel: 3,
			Vicinity:   "Downtown Avenue",
			Types:      []string{"restaurant", "dinner", "lunch"},
			OpenNow:    true,
		},
		{
			Name:       "Quick Bites",
			Rating:     4.1,
			PriceLevel: 1,
			Vicinity:   "Market Square",
			Types:      []string{"fast_food", "lunch", "takeaway"},
			OpenNow:    true,
		},
		{
			Name:       "Sunset Restaurant",
			Rating:     4.7,
			PriceLevel: 4,
			Vicinity:   "Harbor Road",
			Types:      []string{"fine_dining", "dinner"},
			OpenNow:    true,
		},
		{
			Name:       "Street Food Alley",
			Rating:     4.2,
			PriceLevel: 1,
			Vicinity:   "Food Court Road",
			Types:      []string{"street_food", "lunch", "dinner"},
			OpenNow:    true,
		},
	}
}

// DefaultPointsOfInterest is the canned attraction list used when the places
// lookup is unavailable.
func DefaultPointsOfInterest() []domain.PointOfInterest {
	return []domain.PointOfInterest{
		{
			Name:             "Local Museum",
			Rating:           4.5,
			Types:            []string{"museum", "tourist_attraction"},
			UserRatingsTotal: 1500,
		},
		{
			Name:             "Central Park",
			Rating:           4.7,
			Types:            []string{"park", "tourist_attraction"},
			UserRatingsTotal: 3000,
		},
		{
			Name:             "Historic Market",
			Rating:           4.3,
			Types:            []string{"shopping", "food", "point_of_interest"},
			UserRatingsTotal: 2200,
		},
		{
			Name:             "City Viewpoint",
			Rating:           4.8,
			Types:            []string{"tourist_attraction", "viewpoint"},
			UserRatingsTotal: 1800,
		},
		{
			Name:             "Local Restaurant",
			Rating:           4.4,
			Types:            []string{"restaurant", "food"},
			UserRatingsTotal: 950,
		},
	}
}
