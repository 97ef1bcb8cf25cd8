package kvstore

import (
	"context"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/repository/ports"
)

type TripRepository struct {
	kv ports.KV
}

func NewTripRepo(kv ports.KV) *TripRepository {
	return &TripRepository{kv: kv}
}

func (r *TripRepository) SaveCandidates(ctx context.Context, uid string, plans []domain.TravelPlan) error {
	return putJSON(ctx, r.kv, plansKey(uid), plans)
}

func (r *TripRepository) Candidates(ctx context.Context, uid string) ([]domain.TravelPlan, error) {
	var plans []domain.TravelPlan
	if _, err := getJSON(ctx, r.kv, plansKey(uid), &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *TripRepository) ActiveTrip(ctx context.Context, uid string) (*domain.ActiveTrip, error) {
	var trip domain.ActiveTrip
	ok, err := getJSON(ctx, r.kv, activeKey(uid), &trip)
	if err != nil || !ok {
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) Stats(ctx context.Context, uid string) (domain.TripStats, error) {
	var stats domain.TripStats
	if _, err := getJSON(ctx, r.kv, statsKey(uid), &stats); err != nil {
		return domain.TripStats{}, err
	}
	return stats, nil
}

func (r *TripRepository) Begin(ctx context.Context, uid string, trip *domain.ActiveTrip, country string) (domain.TripStats, error) {
	var stats domain.TripStats
	err := r.kv.Tx(ctx, func(tx ports.KVTx) error {
		if _, ok, err := tx.Get(ctx, activeKey(uid)); err != nil {
			return err
		} else if ok {
			return ports.ErrTripActive
		}

		if _, err := getJSON(ctx, tx, statsKey(uid), &stats); err != nil {
			return err
		}
		stats.TripsTaken++

		var countries []string
		if _, err := getJSON(ctx, tx, countriesKey(uid), &countries); err != nil {
			return err
		}
		if country != "" && !contains(countries, country) {
			countries = append(countries, country)
			if err := putJSON(ctx, tx, countriesKey(uid), countries); err != nil {
				return err
			}
			stats.CountriesVisited = len(countries)
		}

		if err := putJSON(ctx, tx, activeKey(uid), trip); err != nil {
			return err
		}
		if err := putJSON(ctx, tx, statsKey(uid), stats); err != nil {
			return err
		}
		return tx.Delete(ctx, plansKey(uid))
	})
	if err != nil {
		return domain.TripStats{}, err
	}
	return stats, nil
}

func (r *TripRepository) Finish(ctx context.Context, uid string, days float64) (domain.TripStats, error) {
	var stats domain.TripStats
	err := r.kv.Tx(ctx, func(tx ports.KVTx) error {
		if _, ok, err := tx.Get(ctx, activeKey(uid)); err != nil {
			return err
		} else if !ok {
			return ports.ErrNoActiveTrip
		}

		if _, err := getJSON(ctx, tx, statsKey(uid), &stats); err != nil {
			return err
		}
		stats.DaysTraveled += days

		if err := putJSON(ctx, tx, statsKey(uid), stats); err != nil {
			return err
		}
		return tx.Delete(ctx, activeKey(uid))
	})
	if err != nil {
		return domain.TripStats{}, err
	}
	return stats, nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
