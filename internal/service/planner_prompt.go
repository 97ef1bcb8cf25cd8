package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

// activityCount is how many itinerary entries a trip of the given length
// should have.
func activityCount(travelHours int) int {
	n := int(math.Round(float64(travelHours) * 1.5))
	if n < 3 {
		return 3
	}
	if n > 12 {
		return 12
	}
	return n
}

/// formatClock renders a 12-hour "3:05 PM" style timestamp.
func formatClock(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	period := "AM"
	if t.Hour() >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), period)
}

// promptStartTime rounds the current time up to the next quarter hour for
// use as the itinerary's first slot.
func promptStartTime(now time.Time) string {
	minute := (now.Minute() + 14) / 15 * 15
	rounded := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location()).
		Add(time.Duration(minute) * time.Minute)
	return formatClock(rounded)
}

// promptRestaurant trims a places result down to the fields worth showing
// the model.
type promptRestaurant struct {
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	PriceLevel int      `json:"priceLevel"`
	Vicinity   string   `json:"vicinity"`
	OpenNow    bool     `json:"openNow"`
	Types      []string `json:"types"`
}

var genericPlaceTypes = map[string]struct{}{
	"restaurant":        {},
	"food":              {},
	"point_of_interest": {},
	"establishment":     {},
}

func promptRestaurants(restaurants []domain.Restaurant) []promptRestaurant {
	out := make([]promptRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		types := make([]string, 0, len(r.Types))
		for _, t := range r.Types {
			if _, generic := genericPlaceTypes[t]; !generic {
				types = append(types, t)
			}
		}
		out = append(out, promptRestaurant{
			Name:       r.Name,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
			Vicinity:   r.Vicinity,
			OpenNow:    r.OpenNow,
			Types:      types,
		})
	}
	return out
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// buildPrompt assembles the user prompt: traveler profile, destination
// insights gathered from the maps provider, the computed budget, and strict
// format requirements for the two-plan JSON response.
func buildPrompt(
	req domain.GenerationRequest,
	transit domain.TransitDetails,
	pois []domain.PointOfInterest,
	budget domain.BudgetBreakdown,
	restaurants []domain.Restaurant,
	now time.Time,
) string {
	includeMeals := req.TravelHours >= 3
	startTime := promptStartTime(now)

	tripLength := fmt.Sprintf("%d-HOUR", req.TravelHours)
	if req.TravelHours >= 8 {
		tripLength = "ONE-DAY"
	}

	topPOIs := pois
	if len(topPOIs) > 5 {
		topPOIs = topPOIs[:5]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create 2 different personalized travel plans for a solo traveler going from %s to %s.\n\n",
		req.StartDestination, req.EndDestination)

	b.WriteString("TRAVELER PROFILE:\n")
	fmt.Fprintf(&b, "- Travel Mood: %s\n", req.TravelMood)
	fmt.Fprintf(&b, "- Available time: %d hours (THIS IS A %s TRIP, START AT %s)\n", req.TravelHours, tripLength, startTime)
	fmt.Fprintf(&b, "- Travel Date: %s\n", req.TravelDate)
	fmt.Fprintf(&b, "- Travel Styles: %s\n", strings.Join(req.UserPreferences.TravelStyle, ", "))
	fmt.Fprintf(&b, "- Budget Level: %s\n", req.UserPreferences.Budget)
	fmt.Fprintf(&b, "- Favorite Activities: %s\n\n", strings.Join(req.UserPreferences.Activities, ", "))

	b.WriteString("DESTINATION INSIGHTS:\n")
	fmt.Fprintf(&b, "- Transit Options: %s\n", mustJSON(transit.Options))
	fmt.Fprintf(&b, "- Local Points of Interest: %s\n", mustJSON(topPOIs))
	if includeMeals {
		fmt.Fprintf(&b, "- Restaurant Recommendations: %s\n", mustJSON(promptRestaurants(restaurants)))
	}
	b.WriteString("\n")

	b.WriteString("BUDGET BREAKDOWN:\n")
	fmt.Fprintf(&b, "- Food: $%d (Breakfast: $%d, Lunch: $%d, Dinner: $%d, Snacks: $%d)\n",
		budget.Food.Total, budget.Food.Breakfast, budget.Food.Lunch, budget.Food.Dinner, budget.Food.Snacks)
	fmt.Fprintf(&b, "- Transportation: $%d (Public Transit: $%d, Taxi/Ride-share: $%d)\n",
		budget.Transportation.Total, budget.Transportation.PublicTransit, budget.Transportation.Taxi)
	fmt.Fprintf(&b, "- Activities: $%d\n", budget.Activities.Total)
	fmt.Fprintf(&b, "- Miscellaneous: $%d\n", budget.Miscellaneous)
	fmt.Fprintf(&b, "- Total Estimate: $%d\n\n", budget.DailyTotal)

	b.WriteString("FORMAT REQUIREMENTS:\n")
	b.WriteString("For EACH of the 2 plans, provide the following structure in a single JSON object with a \"plans\" array containing two plan objects, each with these EXACT field names:\n")
	b.WriteString("1. \"title\": A catchy title that reflects the travel style and mood\n")
	b.WriteString("2. \"description\": A detailed description of the trip experience (100-150 words)\n")
	fmt.Fprintf(&b, "3. \"itinerary\": An ARRAY of objects, each with \"time\" and \"activity\" fields. Include EXACTLY %d activities spanning %d hours, with SPECIFIC TIMES in HH:MM AM/PM format starting from %s\n",
		activityCount(req.TravelHours), req.TravelHours, startTime)
	b.WriteString("4. \"spotifyPlaylist\": An object with \"name\", \"description\", and \"embedUrl\" fields\n")
	if includeMeals {
		b.WriteString("5. \"localFood\": An array of at least 2 food recommendations, each with \"dish\", \"price\", and \"where\" fields (use the restaurant data provided)\n")
	} else {
		b.WriteString("5. \"localFood\": An array with at least 1 food recommendation\n")
	}
	b.WriteString("6. \"transitDetails\": Specific public transit directions between major activities\n")
	b.WriteString("7. \"offBeatExperiences\": An array of at least 1 off-the-beaten-path experience\n")
	b.WriteString("8. \"savingTips\": An array of money-saving tips specific to the destination\n")
	b.WriteString("9. \"imageUrl\": A URL for a relevant image that captures the essence of the plan\n\n")

	b.WriteString("IMPORTANT NOTES:\n")
	b.WriteString("- Format your response as a SINGLE JSON OBJECT with a top-level \"plans\" array containing EXACTLY 2 plan objects.\n")
	if req.TravelHours >= 8 {
		b.WriteString("- THIS IS A SINGLE-DAY TRIP. Do not include accommodation recommendations.\n")
	} else {
		fmt.Fprintf(&b, "- THIS IS A %d-HOUR TRIP. Do not include accommodation recommendations.\n", req.TravelHours)
	}
	fmt.Fprintf(&b, "- Start the itinerary at %s and plan activities to fill exactly %d hours.\n", startTime, req.TravelHours)
	fmt.Fprintf(&b, "- Include SPECIFIC TIMES for each activity in the itinerary (e.g., %q, not just \"Morning\").\n", startTime)
	b.WriteString("- The activities should be spaced appropriately throughout the time period.\n")
	if includeMeals {
		b.WriteString("- Include meal times appropriate to the time of day, using the restaurant data provided if applicable.\n")
	} else {
		b.WriteString("- No need to include formal meal times, but you can include quick snack/coffee breaks if appropriate.\n")
	}
	b.WriteString("- Include exact transit directions between activities.\n")
	b.WriteString("- Your response must be a valid JSON object with this exact structure: {\"plans\": [plan1, plan2]}\n\n")

	b.WriteString("The two plans should be different from each other, catering to different aspects of the traveler's preferences.\n")
	return b.String()
}
