package ports

import "context"

// SettingsRepository stores runtime-supplied credentials, currently just the
// mapping-provider API key a user may enter instead of configuring it via the
// environment. MapsAPIKey returns "" when no key is cached.
type SettingsRepository interface {
	MapsAPIKey(ctx context.Context) (string, error)
	SaveMapsAPIKey(ctx context.Context, key string) error
}
