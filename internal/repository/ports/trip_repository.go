package ports

import (
	"context"
	"errors"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

var (
	// ErrTripActive is returned by Begin when the user already has an
	// active trip.
	ErrTripActive = errors.New("an active trip already exists")
	// ErrNoActiveTrip is returned by Finish when there is nothing to end.
	ErrNoActiveTrip = errors.New("no active trip")
)

// TripRepository persists plan candidates, the single active trip, and the
// cumulative statistics. Begin and Finish are atomic multi-key transitions.
type TripRepository interface {
	SaveCandidates(ctx context.Context, uid string, plans []domain.TravelPlan) error
	Candidates(ctx context.Context, uid string) ([]domain.TravelPlan, error)

	ActiveTrip(ctx context.Context, uid string) (*domain.ActiveTrip, error)
	Stats(ctx context.Context, uid string) (domain.TripStats, error)

	// Begin stores trip as the active trip, increments the trip counter,
	// records country as visited when it is new and non-empty, and clears
	// the candidate cache, all in one transaction. It fails with
	// ErrTripActive when an active trip exists.
	Begin(ctx context.Context, uid string, trip *domain.ActiveTrip, country string) (domain.TripStats, error)

	// Finish deletes the active trip and adds days to the cumulative
	// days-traveled counter in one transaction. It fails with
	// ErrNoActiveTrip when none exists.
	Finish(ctx context.Context, uid string, days float64) (domain.TripStats, error)
}
