package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/repository/ports"
)

var (
	ErrTripAlreadyActive = errors.New("an active trip already exists")
	ErrNoActiveTrip      = errors.New("no active trip")
	ErrPlanNotFound      = errors.New("travel plan not found")
)

// TripSummary is returned when a trip ends.
type TripSummary struct {
	DaysTraveled float64          `json:"daysTraveled"`
	Stats        domain.TripStats `json:"stats"`
}

type TripService struct {
	trips ports.TripRepository
	now   func() time.Time
}

func NewTripService(trips ports.TripRepository) *TripService {
	return &TripService{trips: trips, now: time.Now}
}

// Candidates returns the plans produced by the most recent planning call.
func (s *TripService) Candidates(ctx context.Context, uid string) ([]domain.TravelPlan, error) {
	return s.trips.Candidates(ctx, uid)
}

// Start commits one of the candidate plans as the user's active trip. The
// candidate cache is consumed in the process, so a second Start with the same
// index fails.
func (s *TripService) Start(ctx context.Context, uid string, planIndex int) (*domain.ActiveTrip, domain.TripStats, error) {
	plans, err := s.trips.Candidates(ctx, uid)
	if err != nil {
		return nil, domain.TripStats{}, err
	}
	if planIndex < 0 || planIndex >= len(plans) {
		return nil, domain.TripStats{}, fmt.Errorf("%w: no candidate at index %d", ErrPlanNotFound, planIndex)
	}

	plan := plans[planIndex]
	request := plan.Metadata.GeneratedFor
	trip := &domain.ActiveTrip{
		TravelPlan:       plan,
		StartDate:        s.now(),
		StartDestination: request.StartDestination,
		EndDestination:   request.EndDestination,
		TravelHours:      request.TravelHours,
		TravelMood:       request.TravelMood,
	}

	stats, err := s.trips.Begin(ctx, uid, trip, domain.CountryOf(request.EndDestination))
	if err != nil {
		if errors.Is(err, ports.ErrTripActive) {
			return nil, domain.TripStats{}, ErrTripAlreadyActive
		}
		return nil, domain.TripStats{}, err
	}
	return trip, stats, nil
}

// Active returns the current trip, or ErrNoActiveTrip.
func (s *TripService) Active(ctx context.Context, uid string) (*domain.ActiveTrip, error) {
	trip, err := s.trips.ActiveTrip(ctx, uid)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrNoActiveTrip
	}
	return trip, nil
}

// End closes the active trip, crediting travel days to the stats. Elapsed
// time rounds up to whole days, with a floor of half a day so even an
// immediately-ended trip counts.
func (s *TripService) End(ctx context.Context, uid string) (*TripSummary, error) {
	trip, err := s.trips.ActiveTrip(ctx, uid)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrNoActiveTrip
	}

	days := daysTraveled(trip.StartDate, s.now())
	stats, err := s.trips.Finish(ctx, uid, days)
	if err != nil {
		if errors.Is(err, ports.ErrNoActiveTrip) {
			return nil, ErrNoActiveTrip
		}
		return nil, err
	}
	return &TripSummary{DaysTraveled: days, Stats: stats}, nil
}

// Stats returns the cumulative counters, zero-valued for new users.
func (s *TripService) Stats(ctx context.Context, uid string) (domain.TripStats, error) {
	return s.trips.Stats(ctx, uid)
}

func daysTraveled(start, end time.Time) float64 {
	days := math.Ceil(end.Sub(start).Hours() / 24)
	if days < 0.5 {
		return 0.5
	}
	return days
}
