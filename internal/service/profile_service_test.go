package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

func TestProfileService_UpdatePreferences(t *testing.T) {
	ctx := context.Background()
	profiles := newMemoryProfileRepo()
	profiles.Save(ctx, &domain.UserProfile{UID: "u1", Email: "u@example.com"})
	svc := NewProfileService(profiles)

	prefs := domain.Preferences{
		TravelStyle:   []string{"Foodie", "Cultural Explorer"},
		Accommodation: []string{"Hostels"},
		Budget:        domain.BudgetTierBudget,
		Activities:    []string{"Museums", "Local Cuisine"},
	}
	profile, err := svc.UpdatePreferences(ctx, "u1", prefs)
	if err != nil {
		t.Fatalf("UpdatePreferences returned error: %v", err)
	}
	if !profile.PreferencesCompleted {
		t.Fatalf("expected preferences marked complete")
	}
	if profile.Preferences == nil || profile.Preferences.Budget != domain.BudgetTierBudget {
		t.Fatalf("expected preferences stored, got %+v", profile.Preferences)
	}

	// Replacement is wholesale: a later empty-selection write wins.
	replacement := domain.Preferences{Budget: domain.BudgetTierLuxury}
	profile, err = svc.UpdatePreferences(ctx, "u1", replacement)
	if err != nil {
		t.Fatalf("second UpdatePreferences returned error: %v", err)
	}
	if len(profile.Preferences.TravelStyle) != 0 {
		t.Fatalf("expected previous styles discarded, got %v", profile.Preferences.TravelStyle)
	}
}

func TestProfileService_UpdatePreferencesValidation(t *testing.T) {
	ctx := context.Background()
	profiles := newMemoryProfileRepo()
	profiles.Save(ctx, &domain.UserProfile{UID: "u1"})
	svc := NewProfileService(profiles)

	cases := []struct {
		name  string
		prefs domain.Preferences
	}{
		{"unknown budget", domain.Preferences{Budget: "Platinum"}},
		{"unknown style", domain.Preferences{Budget: domain.BudgetTierMidRange, TravelStyle: []string{"Time Traveler"}}},
		{"unknown activity", domain.Preferences{Budget: domain.BudgetTierMidRange, Activities: []string{"Spelunking"}}},
		{"duplicate selection", domain.Preferences{Budget: domain.BudgetTierMidRange, Activities: []string{"Museums", "Museums"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.UpdatePreferences(ctx, "u1", tc.prefs); !errors.Is(err, ErrPreferenceValidation) {
				t.Fatalf("expected ErrPreferenceValidation, got %v", err)
			}
		})
	}
}

func TestProfileService_EmptySelectionsAccepted(t *testing.T) {
	ctx := context.Background()
	profiles := newMemoryProfileRepo()
	profiles.Save(ctx, &domain.UserProfile{UID: "u1"})
	svc := NewProfileService(profiles)

	// Completing the wizard without touching any step submits the zero
	// value, budget tier included. That write must succeed.
	profile, err := svc.UpdatePreferences(ctx, "u1", domain.Preferences{})
	if err != nil {
		t.Fatalf("UpdatePreferences returned error: %v", err)
	}
	if !profile.PreferencesCompleted {
		t.Fatalf("expected preferences marked complete")
	}
	if profile.Preferences == nil || profile.Preferences.Budget != "" {
		t.Fatalf("expected empty budget stored, got %+v", profile.Preferences)
	}
}

func TestProfileService_GetUnknownUser(t *testing.T) {
	svc := NewProfileService(newMemoryProfileRepo())
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if _, err := svc.UpdatePreferences(context.Background(), "missing", domain.Preferences{Budget: domain.BudgetTierMidRange}); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound from UpdatePreferences, got %v", err)
	}
}

func TestProfileService_OptionsCatalog(t *testing.T) {
	svc := NewProfileService(newMemoryProfileRepo())
	options := svc.Options(context.Background())

	if len(options.TravelStyles) != 11 {
		t.Fatalf("expected 11 travel styles, got %d", len(options.TravelStyles))
	}
	if len(options.BudgetTiers) != 3 {
		t.Fatalf("expected 3 budget tiers, got %d", len(options.BudgetTiers))
	}
	if options.BudgetTiers[0].Description != "Under $50/day" {
		t.Fatalf("unexpected tier description %q", options.BudgetTiers[0].Description)
	}
	if len(options.Accommodations) != 4 || len(options.Activities) != 12 {
		t.Fatalf("unexpected catalog sizes: %d accommodations, %d activities",
			len(options.Accommodations), len(options.Activities))
	}
}
