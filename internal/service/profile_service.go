package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/repository/ports"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrPreferenceValidation = errors.New("preference validation failed")
)

type ProfileService struct {
	profiles ports.ProfileRepository
	now      func() time.Time
}

func NewProfileService(profiles ports.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles, now: time.Now}
}

func (s *ProfileService) Get(ctx context.Context, uid string) (*domain.UserProfile, error) {
	profile, err := s.profiles.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Options returns the fixed catalog backing the onboarding wizard.
func (s *ProfileService) Options(_ context.Context) domain.PreferenceOptions {
	return domain.OptionCatalog()
}

// UpdatePreferences validates the submitted selections against the catalog,
// replaces the stored preference set wholesale, and marks onboarding
// complete.
func (s *ProfileService) UpdatePreferences(ctx context.Context, uid string, prefs domain.Preferences) (*domain.UserProfile, error) {
	if err := validatePreferences(prefs); err != nil {
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	profile.Preferences = &prefs
	profile.PreferencesCompleted = true
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func validatePreferences(prefs domain.Preferences) error {
	catalog := domain.OptionCatalog()

	// An empty tier is the wizard's initial state and stays legal; only a
	// non-empty value outside the catalog is rejected.
	if prefs.Budget != "" {
		tierKnown := false
		for _, tier := range catalog.BudgetTiers {
			if tier.Label == prefs.Budget {
				tierKnown = true
				break
			}
		}
		if !tierKnown {
			return fmt.Errorf("%w: unknown budget tier %q", ErrPreferenceValidation, prefs.Budget)
		}
	}

	if err := validateSelection("travelStyle", prefs.TravelStyle, catalog.TravelStyles); err != nil {
		return err
	}
	if err := validateSelection("accommodation", prefs.Accommodation, catalog.Accommodations); err != nil {
		return err
	}
	return validateSelection("activities", prefs.Activities, catalog.Activities)
}

func validateSelection(field string, selected, allowed []string) error {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, option := range allowed {
		allowedSet[option] = struct{}{}
	}
	seen := make(map[string]struct{}, len(selected))
	for _, choice := range selected {
		if _, ok := allowedSet[choice]; !ok {
			return fmt.Errorf("%w: unknown %s option %q", ErrPreferenceValidation, field, choice)
		}
		if _, dup := seen[choice]; dup {
			return fmt.Errorf("%w: duplicate %s option %q", ErrPreferenceValidation, field, choice)
		}
		seen[choice] = struct{}{}
	}
	return nil
}
