package maps

import (
	"math"
	"strings"
)

// Per-ride transit fares in USD for well-known cities.
var transitFares = map[string]float64{
	"new york":  2.75,
	"london":    2.5,
	"paris":     1.9,
	"tokyo":     2.0,
	"berlin":    3.0,
	"rome":      1.5,
	"barcelona": 2.2,
	"amsterdam": 3.2,
	"singapore": 1.7,
	"hong kong": 1.5,
	"sydney":    3.8,
	"toronto":   3.2,
}

type taxiRate struct {
	base  float64
	perKm float64
}

var taxiRates = map[string]taxiRate{
	"new york":  {base: 2.5, perKm: 1.56},
	"london":    {base: 3.0, perKm: 1.74},
	"paris":     {base: 2.6, perKm: 1.07},
	"tokyo":     {base: 4.0, perKm: 2.7},
	"berlin":    {base: 3.9, perKm: 1.5},
	"rome":      {base: 3.0, perKm: 1.1},
	"barcelona": {base: 2.1, perKm: 1.1},
	"amsterdam": {base: 3.0, perKm: 2.17},
	"singapore": {base: 3.2, perKm: 0.55},
	"hong kong": {base: 2.8, perKm: 0.8},
	"sydney":    {base: 2.5, perKm: 1.3},
	"toronto":   {base: 3.25, perKm: 1.75},
}

func cityKey(destination string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(destination, ",")[0]))
}

// EstimateTransitCost returns the single-ride fare for the destination city,
// defaulting to $2.50 where the city is unknown.
func EstimateTransitCost(destination string) float64 {
	if fare, ok := transitFares[cityKey(destination)]; ok {
		return fare
	}
	return 2.5
}

// EstimateTaxiCost applies the city's base fare plus a per-kilometre rate,
// rounded to the nearest tenth.
func EstimateTaxiCost(distanceMeters float64, destination string) float64 {
	rate, ok := taxiRates[cityKey(destination)]
	if !ok {
		rate = taxiRate{base: 3.0, perKm: 1.5}
	}
	cost := rate.base + distanceMeters/1000*rate.perKm
	return math.Round(cost*10) / 10
}
