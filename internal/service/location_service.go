package service

import (
	"context"
	"errors"
	"fmt"
)

var ErrLocationValidation = errors.New("location validation failed")

// Geocoder resolves coordinates to a human-readable address. Its
// implementation degrades to formatted coordinates alongside the error.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// LocationResult carries the resolved address plus the provider error, if
// any, that forced a coordinate fallback.
type LocationResult struct {
	Address string
	Partial error
}

type LocationService struct {
	geo Geocoder
}

func NewLocationService(geo Geocoder) *LocationService {
	return &LocationService{geo: geo}
}

// Resolve turns device coordinates into an address suitable for the planning
// form's start-destination field.
func (s *LocationService) Resolve(ctx context.Context, lat, lng float64) (*LocationResult, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: latitude must be between -90 and 90", ErrLocationValidation)
	}
	if lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: longitude must be between -180 and 180", ErrLocationValidation)
	}

	address, err := s.geo.ReverseGeocode(ctx, lat, lng)
	return &LocationResult{Address: address, Partial: err}, nil
}
