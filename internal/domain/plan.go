package domain

import (
	"strings"
	"time"
)

// ItineraryItem is one scheduled activity. Time is a 12-hour clock string
// such as "10:15 AM".
type ItineraryItem struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	MapImageURL string `json:"mapImageUrl"`
}

type SpotifyTrack struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

type SpotifyPlaylist struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Tracks      []SpotifyTrack `json:"tracks,omitempty"`
	EmbedURL    string         `json:"embedUrl"`
}

type FoodRecommendation struct {
	Dish  string  `json:"dish"`
	Price float64 `json:"price"`
	Where string  `json:"where"`
}

type Restaurant struct {
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	PriceLevel  int      `json:"priceLevel"`
	Vicinity    string   `json:"vicinity"`
	Types       []string `json:"types"`
	OpenNow     bool     `json:"openNow"`
	Photos      []string `json:"photos,omitempty"`
	MapImageURL string   `json:"mapImageUrl,omitempty"`
}

type PointOfInterest struct {
	Name             string   `json:"name"`
	Rating           float64  `json:"rating"`
	Types            []string `json:"types"`
	UserRatingsTotal int      `json:"user_ratings_total"`
}

type TransitOption struct {
	Mode      string  `json:"mode"`
	Duration  string  `json:"duration"`
	Cost      float64 `json:"cost"`
	Route     string  `json:"route"`
	Frequency string  `json:"frequency"`
}

type TransitDetails struct {
	Options          []TransitOption `json:"options"`
	LocalTransitTips []string        `json:"localTransitTips"`
	AverageCost      float64         `json:"averageCost"`
}

type FoodBudget struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
	Snacks    int `json:"snacks"`
	Total     int `json:"total"`
}

type TransportationBudget struct {
	PublicTransit int `json:"publicTransit"`
	Taxi          int `json:"taxi"`
	Total         int `json:"total"`
}

type ActivitiesBudget struct {
	Paid  int `json:"paid"`
	Free  int `json:"free"`
	Total int `json:"total"`
}

// BudgetBreakdown is a per-day estimate. Sub-items sum to their category
// totals and DailyTotal equals the sum of the four categories; the estimator
// is responsible for that invariant, not the store.
type BudgetBreakdown struct {
	Food           FoodBudget           `json:"food"`
	Transportation TransportationBudget `json:"transportation"`
	Activities     ActivitiesBudget     `json:"activities"`
	Miscellaneous  int                  `json:"miscellaneous"`
	DailyTotal     int                  `json:"dailyTotal"`
}

// GenerationRequest echoes the inputs a plan was generated for.
type GenerationRequest struct {
	StartDestination string      `json:"startDestination"`
	EndDestination   string      `json:"endDestination"`
	TravelMood       string      `json:"travelMood"`
	TravelHours      int         `json:"travelHours"`
	TravelDate       string      `json:"travelDate,omitempty"`
	UserPreferences  Preferences `json:"userPreferences"`
}

type PlanMetadata struct {
	GeneratedFor GenerationRequest `json:"generatedFor"`
	GeneratedAt  time.Time         `json:"generatedAt"`
}

// TravelPlan is one candidate day-trip itinerary produced by the generation
// pipeline (or its fallback).
type TravelPlan struct {
	Title              string               `json:"title"`
	Description        string               `json:"description"`
	Itinerary          []ItineraryItem      `json:"itinerary"`
	SpotifyPlaylist    SpotifyPlaylist      `json:"spotifyPlaylist"`
	ImageURL           string               `json:"imageUrl"`
	DestinationMapURL  string               `json:"destinationMapUrl"`
	BudgetBreakdown    BudgetBreakdown      `json:"budgetBreakdown"`
	LocalFood          []FoodRecommendation `json:"localFood,omitempty"`
	TransitDetails     TransitDetails       `json:"transitDetails"`
	OffBeatExperiences []string             `json:"offBeatExperiences,omitempty"`
	SavingTips         []string             `json:"savingTips,omitempty"`
	Restaurants        []Restaurant         `json:"restaurants"`
	Metadata           PlanMetadata         `json:"metadata"`
}

// CityOf extracts the city part of a "City, Country" destination string.
func CityOf(destination string) string {
	city, _, _ := strings.Cut(destination, ",")
	return strings.TrimSpace(city)
}

// CountryOf extracts the trailing comma-separated segment of a destination
// string, used to track distinct countries visited.
func CountryOf(destination string) string {
	parts := strings.Split(destination, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}
