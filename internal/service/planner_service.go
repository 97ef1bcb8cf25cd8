package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/llm"
	"github.com/AdithyahNair/Prefer/internal/repository/ports"
)

var ErrTripValidation = errors.New("trip validation failed")

const systemPrompt = "You are an expert travel planner specializing in DAY TRIPS only, with deep knowledge of destinations worldwide. " +
	"Create personalized one-day travel itineraries that include detailed budget breakdowns, local transit options, " +
	"restaurant recommendations, and experiences tailored to the traveler's preferences. Your response MUST include " +
	"hourly activities for a full day trip with specific times for each activity. Format your response as JSON."

// MapsProvider is the slice of the maps client the planner needs. Every
// method degrades internally, so none of them return errors.
type MapsProvider interface {
	TransitInfo(ctx context.Context, origin, destination string) domain.TransitDetails
	PointsOfInterest(ctx context.Context, location string) []domain.PointOfInterest
	NearbyRestaurants(ctx context.Context, location, mealType string) []domain.Restaurant
	AnnotateItinerary(ctx context.Context, itinerary []domain.ItineraryItem, baseLocation string)
	RestaurantMapURL(ctx context.Context, restaurant domain.Restaurant) string
	DestinationMapURL(ctx context.Context, destination string) string
}

// PlannerService runs the plan generation pipeline: destination insight
// gathering, the LLM call, normalization of its response, and the canned
// fallback when the model is unreachable or returns nothing usable.
type PlannerService struct {
	llm      llm.Completer
	maps     MapsProvider
	trips    ports.TripRepository
	profiles ports.ProfileRepository
	now      func() time.Time
}

func NewPlannerService(
	completer llm.Completer,
	mapsProvider MapsProvider,
	trips ports.TripRepository,
	profiles ports.ProfileRepository,
) *PlannerService {
	return &PlannerService{
		llm:      completer,
		maps:     mapsProvider,
		trips:    trips,
		profiles: profiles,
		now:      time.Now,
	}
}

// GeneratePlans produces candidate day-trip plans for the request and caches
// them as the user's current candidates. It always returns at least the two
// fallback plans.
func (s *PlannerService) GeneratePlans(ctx context.Context, uid string, req domain.TripRequest) ([]domain.TravelPlan, error) {
	if err := validateTripRequest(&req); err != nil {
		return nil, err
	}

	prefs, err := s.preferencesFor(ctx, uid)
	if err != nil {
		return nil, err
	}
	genRequest := domain.GenerationRequest{
		StartDestination: req.StartDestination,
		EndDestination:   req.EndDestination,
		TravelMood:       req.TravelMood,
		TravelHours:      req.TravelHours,
		TravelDate:       req.TravelDate,
		UserPreferences:  prefs,
	}

	now := s.now()
	transit := s.maps.TransitInfo(ctx, req.StartDestination, req.EndDestination)
	pois := s.maps.PointsOfInterest(ctx, req.EndDestination)
	budget := estimateBudget(req.EndDestination, prefs.Budget)

	var restaurants []domain.Restaurant
	if req.TravelHours >= 3 {
		restaurants = s.maps.NearbyRestaurants(ctx, req.EndDestination, mealSlot(now))
	}

	plans := s.generateWithLLM(ctx, genRequest, transit, pois, budget, restaurants, now)
	if len(plans) == 0 {
		plans = s.fallbackPlans(ctx, genRequest, now)
	}

	if err := s.trips.SaveCandidates(ctx, uid, plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *PlannerService) generateWithLLM(
	ctx context.Context,
	req domain.GenerationRequest,
	transit domain.TransitDetails,
	pois []domain.PointOfInterest,
	budget domain.BudgetBreakdown,
	restaurants []domain.Restaurant,
	now time.Time,
) []domain.TravelPlan {
	prompt := buildPrompt(req, transit, pois, budget, restaurants, now)
	raw, err := s.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil
	}

	plans := parsePlans(raw)
	for i := range plans {
		s.enhancePlan(ctx, &plans[i], req, transit, restaurants, now)
	}
	return plans
}

// enhancePlan fills in everything the model cannot know: sorted itinerary
// with map images, live restaurant picks, the fetched transit details, budget
// backfill, and request metadata.
func (s *PlannerService) enhancePlan(
	ctx context.Context,
	plan *domain.TravelPlan,
	req domain.GenerationRequest,
	transit domain.TransitDetails,
	restaurants []domain.Restaurant,
	now time.Time,
) {
	sortItinerary(plan.Itinerary)
	s.maps.AnnotateItinerary(ctx, plan.Itinerary, req.EndDestination)

	plan.Restaurants = s.openRestaurants(ctx, restaurants, req.TravelHours)
	plan.TransitDetails = transit
	plan.DestinationMapURL = s.maps.DestinationMapURL(ctx, req.EndDestination)
	backfillBudget(&plan.BudgetBreakdown)

	if plan.ImageURL == "" {
		plan.ImageURL = defaultPlanImageURL
	}
	if plan.SpotifyPlaylist.Name == "" && plan.SpotifyPlaylist.EmbedURL == "" {
		plan.SpotifyPlaylist = defaultPlaylist()
	}
	plan.Metadata = domain.PlanMetadata{GeneratedFor: req, GeneratedAt: now}
}

// openRestaurants keeps the restaurants reported open, annotated with map
// images, capped at three. Short trips carry none.
func (s *PlannerService) openRestaurants(ctx context.Context, restaurants []domain.Restaurant, travelHours int) []domain.Restaurant {
	if travelHours < 3 {
		return []domain.Restaurant{}
	}
	open := make([]domain.Restaurant, 0, 3)
	for _, restaurant := range restaurants {
		if !restaurant.OpenNow {
			continue
		}
		restaurant.MapImageURL = s.maps.RestaurantMapURL(ctx, restaurant)
		open = append(open, restaurant)
		if len(open) == 3 {
			break
		}
	}
	return open
}

func (s *PlannerService) preferencesFor(ctx context.Context, uid string) (domain.Preferences, error) {
	profile, err := s.profiles.Get(ctx, uid)
	if err != nil {
		return domain.Preferences{}, err
	}
	if profile == nil || profile.Preferences == nil {
		return domain.DefaultPreferences(), nil
	}
	return *profile.Preferences, nil
}

func validateTripRequest(req *domain.TripRequest) error {
	req.StartDestination = strings.TrimSpace(req.StartDestination)
	req.EndDestination = strings.TrimSpace(req.EndDestination)
	req.TravelMood = strings.TrimSpace(req.TravelMood)
	req.TravelDate = strings.TrimSpace(req.TravelDate)

	if req.EndDestination == "" {
		return fmt.Errorf("%w: endDestination is required", ErrTripValidation)
	}
	if req.TravelHours < 1 || req.TravelHours > 24 {
		return fmt.Errorf("%w: travelHours must be between 1 and 24", ErrTripValidation)
	}
	if req.TravelMood == "" {
		return fmt.Errorf("%w: travelMood is required", ErrTripValidation)
	}
	return nil
}

// mealSlot picks which meal to search restaurants for based on the local
// hour.
func mealSlot(now time.Time) string {
	switch hour := now.Hour(); {
	case hour >= 6 && hour < 11:
		return "breakfast"
	case hour >= 11 && hour < 15:
		return "lunch"
	case hour >= 17 && hour < 22:
		return "dinner"
	default:
		return "restaurant"
	}
}
