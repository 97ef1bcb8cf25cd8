package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

// fallbackTheme shapes one synthesized plan: an opening line, a pool of
// mid-day activities, and a closing line.
type fallbackTheme struct {
	start      string
	activities []string
	end        string
}

var fallbackThemes = []fallbackTheme{
	{
		start: "Begin your cultural exploration of",
		activities: []string{
			"Visit a local museum",
			"Explore a historical landmark",
			"Admire architecture in the old town",
			"Visit an art gallery",
			"Take a guided walking tour",
			"Discover local crafts at a workshop",
			"Visit a cultural center",
			"Explore ancient ruins or monuments",
		},
		end: "Conclude your cultural tour with a farewell view of",
	},
	{
		start: "Start your outdoor adventure in",
		activities: []string{
			"Hike a scenic trail",
			"Explore a local park",
			"Visit a botanical garden",
			"Take photos at a scenic viewpoint",
			"Enjoy a riverside walk",
			"Explore a natural reserve",
			"Visit a local beach or lakefront",
			"Take a bike tour around the city",
		},
		end: "End your nature exploration with a sunset view of",
	},
}

// fallbackPlans synthesizes the two canned plans used when the model call
// fails or returns nothing usable. They carry full metadata and map
// annotations so the caller cannot tell them apart structurally from
// generated plans.
func (s *PlannerService) fallbackPlans(ctx context.Context, req domain.GenerationRequest, now time.Time) []domain.TravelPlan {
	city := domain.CityOf(req.EndDestination)
	metadata := domain.PlanMetadata{GeneratedFor: req, GeneratedAt: now}

	cultural := domain.TravelPlan{
		Title: fmt.Sprintf("Cultural %s Tour in %s", req.TravelMood, city),
		Description: fmt.Sprintf(
			"A %d-hour cultural journey through %s designed to match your %s travel mood. "+
				"This itinerary focuses on the rich history, art, and local traditions that make this destination unique.",
			req.TravelHours, city, strings.ToLower(req.TravelMood)),
		Itinerary: spacedActivities(req.EndDestination, req.TravelHours, 0, now),
		SpotifyPlaylist: domain.SpotifyPlaylist{
			Name:        city + " Cultural Vibes",
			Description: fmt.Sprintf("Traditional and contemporary music from %s to enhance your cultural exploration", city),
			Tracks: []domain.SpotifyTrack{
				{Title: "Local Traditional", Artist: "Heritage Ensemble"},
				{Title: "Modern Fusion", Artist: "Contemporary Artist"},
				{Title: "Cultural Themes", Artist: "Local Orchestra"},
			},
			EmbedURL: "https://open.spotify.com/embed/playlist/37i9dQZF1DX0SM0LYsmbMT",
		},
		ImageURL: defaultPlanImageURL,
		BudgetBreakdown: domain.BudgetBreakdown{
			Food: domain.FoodBudget{
				Breakfast: 15,
				Lunch:     20,
				Dinner:    35,
				Snacks:    10,
				Total:     scaleForHours(80, req.TravelHours),
			},
			Transportation: domain.TransportationBudget{PublicTransit: 10, Taxi: 15, Total: 25},
			Activities: domain.ActivitiesBudget{
				Paid:  scaleForHours(40, req.TravelHours),
				Free:  0,
				Total: scaleForHours(40, req.TravelHours),
			},
			Miscellaneous: 15,
			DailyTotal:    scaleForHours(160, req.TravelHours),
		},
		LocalFood: []domain.FoodRecommendation{
			{Dish: "Traditional Specialty", Price: 18, Where: "Historic Restaurant"},
			{Dish: "Cultural Delicacy", Price: 12, Where: "Local Eatery"},
		},
		TransitDetails: domain.TransitDetails{
			Options: []domain.TransitOption{},
			LocalTransitTips: []string{
				"Many cultural sites are in the same district, making them walkable",
				"Look for day passes that include entry to multiple museums",
			},
			AverageCost: 10,
		},
		OffBeatExperiences: []string{
			"Visit a hidden museum known mostly to locals",
			"Attend a traditional craft workshop",
		},
		SavingTips: []string{
			"Many museums have discounted or free entry days",
			"Look for cultural passes that combine multiple attractions",
			"Take guided group tours instead of private options",
		},
		Restaurants: []domain.Restaurant{},
		Metadata:    metadata,
	}

	outdoor := domain.TravelPlan{
		Title: fmt.Sprintf("Outdoor %s Adventure in %s", req.TravelMood, city),
		Description: fmt.Sprintf(
			"Experience the natural beauty of %s with this %d-hour outdoor-focused %s adventure. "+
				"This itinerary takes you to scenic spots, parks, and outdoor experiences that showcase the destination's natural charm.",
			city, req.TravelHours, strings.ToLower(req.TravelMood)),
		Itinerary: spacedActivities(req.EndDestination, req.TravelHours, 1, now),
		SpotifyPlaylist: domain.SpotifyPlaylist{
			Name:        city + " Nature Sounds",
			Description: "Relaxing and energizing tracks to accompany your outdoor exploration",
			Tracks: []domain.SpotifyTrack{
				{Title: "Natural Rhythms", Artist: "Ambient Collective"},
				{Title: "Urban Nature", Artist: "City Soundscapes"},
				{Title: "Adventure Beats", Artist: "Explorer's Playlist"},
			},
			EmbedURL: "https://open.spotify.com/embed/playlist/37i9dQZF1DXdLEN7aqioXM",
		},
		ImageURL: "https://images.unsplash.com/photo-1551634979-2b11f8c946fe?q=80&w=2071&auto=format&fit=crop",
		BudgetBreakdown: domain.BudgetBreakdown{
			Food: domain.FoodBudget{
				Breakfast: 12,
				Lunch:     15,
				Dinner:    28,
				Snacks:    8,
				Total:     scaleForHours(63, req.TravelHours),
			},
			Transportation: domain.TransportationBudget{PublicTransit: 8, Taxi: 15, Total: 23},
			Activities: domain.ActivitiesBudget{
				Paid:  scaleForHours(25, req.TravelHours),
				Free:  0,
				Total: scaleForHours(25, req.TravelHours),
			},
			Miscellaneous: 12,
			DailyTotal:    scaleForHours(123, req.TravelHours),
		},
		LocalFood: []domain.FoodRecommendation{
			{Dish: "Fresh Local Produce", Price: 10, Where: "Farmers Market"},
			{Dish: "Picnic Lunch", Price: 15, Where: "Local Deli"},
		},
		TransitDetails: domain.TransitDetails{
			Options: []domain.TransitOption{},
			LocalTransitTips: []string{
				"Rent a bike to easily access parks and nature spots",
				"Some natural areas have shuttle services during peak seasons",
			},
			AverageCost: 8,
		},
		OffBeatExperiences: []string{
			"Discover a hidden viewpoint known mostly to locals",
			"Find a secluded picnic spot with amazing views",
		},
		SavingTips: []string{
			"Pack your own water and snacks for outdoor activities",
			"Use bike-sharing programs rather than taxis",
			"Most parks and natural areas have free admission",
		},
		Restaurants: []domain.Restaurant{},
		Metadata:    metadata,
	}

	plans := []domain.TravelPlan{cultural, outdoor}
	for i := range plans {
		s.maps.AnnotateItinerary(ctx, plans[i].Itinerary, req.EndDestination)
		plans[i].DestinationMapURL = s.maps.DestinationMapURL(ctx, req.EndDestination)
	}
	return plans
}

// scaleForHours prorates an 8-hour base figure for shorter trips, rounding
// per figure.
func scaleForHours(base, travelHours int) int {
	if travelHours >= 8 {
		return base
	}
	return int(math.Round(float64(base) * float64(travelHours) / 8))
}

// spacedActivities synthesizes an evenly spaced itinerary starting now.
// Meal slots claim their time windows once each; remaining slots rotate
// through the theme's activity pool.
func spacedActivities(endDestination string, travelHours, themeIndex int, now time.Time) []domain.ItineraryItem {
	city := domain.CityOf(endDestination)
	theme := fallbackThemes[themeIndex%len(fallbackThemes)]

	count := activityCount(travelHours)
	span := time.Duration(travelHours) * time.Hour

	items := make([]domain.ItineraryItem, 0, count)
	nextThemed := 0
	for i := 0; i < count; i++ {
		// Duration arithmetic keeps the spacing exact: the last entry
		// lands precisely travelHours after the first.
		slot := now.Add(span * time.Duration(i) / time.Duration(count-1))
		hour := slot.Hour()

		var activity string
		switch {
		case i == 0:
			activity = theme.start + " " + city
		case hour >= 7 && hour <= 9 && !containsActivity(items, "breakfast"):
			activity = "Enjoy breakfast at a local café"
		case hour >= 11 && hour <= 14 && !containsActivity(items, "lunch"):
			activity = "Have lunch at a popular restaurant"
		case hour >= 17 && hour <= 20 && !containsActivity(items, "dinner"):
			activity = "Dinner at a recommended spot"
		case i == count-1:
			activity = theme.end + " " + city
		default:
			activity = theme.activities[nextThemed%len(theme.activities)]
			nextThemed++
		}

		items = append(items, domain.ItineraryItem{
			Time:     formatClock(slot),
			Activity: activity,
		})
	}
	return items
}

func containsActivity(items []domain.ItineraryItem, substring string) bool {
	for _, item := range items {
		if strings.Contains(item.Activity, substring) {
			return true
		}
	}
	return false
}
