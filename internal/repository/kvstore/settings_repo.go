package kvstore

import (
	"context"

	"github.com/AdithyahNair/Prefer/internal/repository/ports"
)

type SettingsRepository struct {
	kv ports.KV
}

func NewSettingsRepo(kv ports.KV) *SettingsRepository {
	return &SettingsRepository{kv: kv}
}

func (r *SettingsRepository) MapsAPIKey(ctx context.Context) (string, error) {
	var key string
	if _, err := getJSON(ctx, r.kv, keyMapsAPIKey, &key); err != nil {
		return "", err
	}
	return key, nil
}

func (r *SettingsRepository) SaveMapsAPIKey(ctx context.Context, key string) error {
	return putJSON(ctx, r.kv, keyMapsAPIKey, key)
}
