package service

import (
	"context"
	"errors"
	"time"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/repository/ports"
)

// In-memory fakes shared by the service tests.

type memoryCredentialRepo struct {
	records map[string]*domain.UserRecord
}

func newMemoryCredentialRepo() *memoryCredentialRepo {
	return &memoryCredentialRepo{records: map[string]*domain.UserRecord{}}
}

func (r *memoryCredentialRepo) Create(_ context.Context, record *domain.UserRecord) error {
	if _, exists := r.records[record.UID]; exists {
		return errors.New("duplicate uid")
	}
	clone := *record
	r.records[record.UID] = &clone
	return nil
}

func (r *memoryCredentialRepo) FindByEmail(_ context.Context, email string) (*domain.UserRecord, error) {
	for _, record := range r.records {
		if record.Email == email {
			clone := *record
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memoryCredentialRepo) FindByProvider(_ context.Context, email, provider string) (*domain.UserRecord, error) {
	for _, record := range r.records {
		if record.Email == email && record.AuthProvider == provider {
			clone := *record
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memoryCredentialRepo) FindByID(_ context.Context, uid string) (*domain.UserRecord, error) {
	record, ok := r.records[uid]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

type memoryProfileRepo struct {
	profiles map[string]*domain.UserProfile
}

func newMemoryProfileRepo() *memoryProfileRepo {
	return &memoryProfileRepo{profiles: map[string]*domain.UserProfile{}}
}

func (r *memoryProfileRepo) Get(_ context.Context, uid string) (*domain.UserProfile, error) {
	profile, ok := r.profiles[uid]
	if !ok {
		return nil, nil
	}
	clone := *profile
	return &clone, nil
}

func (r *memoryProfileRepo) Save(_ context.Context, profile *domain.UserProfile) error {
	clone := *profile
	r.profiles[profile.UID] = &clone
	return nil
}

func (r *memoryProfileRepo) Delete(_ context.Context, uid string) error {
	delete(r.profiles, uid)
	return nil
}

type memorySessionRepo struct {
	sessions map[string]domain.AuthUser
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: map[string]domain.AuthUser{}}
}

func (r *memorySessionRepo) Put(_ context.Context, user domain.AuthUser) error {
	r.sessions[user.UID] = user
	return nil
}

func (r *memorySessionRepo) Get(_ context.Context, uid string) (*domain.AuthUser, error) {
	user, ok := r.sessions[uid]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *memorySessionRepo) Delete(_ context.Context, uid string) error {
	delete(r.sessions, uid)
	return nil
}

type memoryTripRepo struct {
	candidates map[string][]domain.TravelPlan
	active     map[string]*domain.ActiveTrip
	stats      map[string]domain.TripStats
	countries  map[string][]string
}

func newMemoryTripRepo() *memoryTripRepo {
	return &memoryTripRepo{
		candidates: map[string][]domain.TravelPlan{},
		active:     map[string]*domain.ActiveTrip{},
		stats:      map[string]domain.TripStats{},
		countries:  map[string][]string{},
	}
}

func (r *memoryTripRepo) SaveCandidates(_ context.Context, uid string, plans []domain.TravelPlan) error {
	r.candidates[uid] = append([]domain.TravelPlan{}, plans...)
	return nil
}

func (r *memoryTripRepo) Candidates(_ context.Context, uid string) ([]domain.TravelPlan, error) {
	return append([]domain.TravelPlan{}, r.candidates[uid]...), nil
}

func (r *memoryTripRepo) ActiveTrip(_ context.Context, uid string) (*domain.ActiveTrip, error) {
	trip, ok := r.active[uid]
	if !ok {
		return nil, nil
	}
	clone := *trip
	return &clone, nil
}

func (r *memoryTripRepo) Stats(_ context.Context, uid string) (domain.TripStats, error) {
	return r.stats[uid], nil
}

func (r *memoryTripRepo) Begin(_ context.Context, uid string, trip *domain.ActiveTrip, country string) (domain.TripStats, error) {
	if _, exists := r.active[uid]; exists {
		return domain.TripStats{}, ports.ErrTripActive
	}
	stats := r.stats[uid]
	stats.TripsTaken++
	if country != "" && !containsString(r.countries[uid], country) {
		r.countries[uid] = append(r.countries[uid], country)
	}
	stats.CountriesVisited = len(r.countries[uid])
	r.stats[uid] = stats

	clone := *trip
	r.active[uid] = &clone
	delete(r.candidates, uid)
	return stats, nil
}

func (r *memoryTripRepo) Finish(_ context.Context, uid string, days float64) (domain.TripStats, error) {
	if _, exists := r.active[uid]; !exists {
		return domain.TripStats{}, ports.ErrNoActiveTrip
	}
	stats := r.stats[uid]
	stats.DaysTraveled += days
	r.stats[uid] = stats
	delete(r.active, uid)
	return stats, nil
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

type memorySettingsRepo struct {
	key string
	err error
}

func (r *memorySettingsRepo) MapsAPIKey(_ context.Context) (string, error) {
	return r.key, r.err
}

func (r *memorySettingsRepo) SaveMapsAPIKey(_ context.Context, key string) error {
	r.key = key
	return nil
}

// fakeCompleter returns a fixed response or error.
type fakeCompleter struct {
	response string
	err      error

	lastSystemPrompt string
	lastUserPrompt   string
}

func (c *fakeCompleter) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	c.lastSystemPrompt = systemPrompt
	c.lastUserPrompt = userPrompt
	return c.response, c.err
}

// fakeMaps records calls and serves canned data without any HTTP.
type fakeMaps struct {
	transit     domain.TransitDetails
	pois        []domain.PointOfInterest
	restaurants []domain.Restaurant
	mealType    string
}

func (m *fakeMaps) TransitInfo(_ context.Context, _, _ string) domain.TransitDetails {
	return m.transit
}

func (m *fakeMaps) PointsOfInterest(_ context.Context, _ string) []domain.PointOfInterest {
	return m.pois
}

func (m *fakeMaps) NearbyRestaurants(_ context.Context, _, mealType string) []domain.Restaurant {
	m.mealType = mealType
	return m.restaurants
}

func (m *fakeMaps) AnnotateItinerary(_ context.Context, itinerary []domain.ItineraryItem, baseLocation string) {
	for i := range itinerary {
		itinerary[i].MapImageURL = "https://maps.example/" + baseLocation
	}
}

func (m *fakeMaps) RestaurantMapURL(_ context.Context, restaurant domain.Restaurant) string {
	return "https://maps.example/restaurant/" + restaurant.Name
}

func (m *fakeMaps) DestinationMapURL(_ context.Context, destination string) string {
	return "https://maps.example/destination/" + destination
}

// fakeGeocoder resolves to a fixed address.
type fakeGeocoder struct {
	address string
	err     error
}

func (g *fakeGeocoder) ReverseGeocode(_ context.Context, _, _ float64) (string, error) {
	return g.address, g.err
}

func fixedTime() time.Time {
	return time.Date(2025, time.June, 14, 10, 0, 0, 0, time.UTC)
}
