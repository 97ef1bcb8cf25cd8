package service

import (
	"context"
	"strings"

	"github.com/AdithyahNair/Prefer/internal/repository/ports"
)

// SettingsService manages the runtime-supplied maps API key. A key stored
// here takes precedence over the one configured via the environment.
type SettingsService struct {
	settings  ports.SettingsRepository
	configKey string
}

func NewSettingsService(settings ports.SettingsRepository, configKey string) *SettingsService {
	return &SettingsService{settings: settings, configKey: configKey}
}

// MapsAPIKey returns the stored key, falling back to the configured one.
// Lookup errors degrade to the configured key so map rendering keeps working.
func (s *SettingsService) MapsAPIKey(ctx context.Context) string {
	key, err := s.settings.MapsAPIKey(ctx)
	if err != nil || key == "" {
		return s.configKey
	}
	return key
}

// SaveMapsAPIKey stores the key. An empty key clears the stored value so the
// configured key applies again.
func (s *SettingsService) SaveMapsAPIKey(ctx context.Context, key string) error {
	return s.settings.SaveMapsAPIKey(ctx, strings.TrimSpace(key))
}
