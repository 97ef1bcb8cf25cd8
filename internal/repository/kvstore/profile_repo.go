package kvstore

import (
	"context"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/repository/ports"
)

type ProfileRepository struct {
	kv ports.KV
}

func NewProfileRepo(kv ports.KV) *ProfileRepository {
	return &ProfileRepository{kv: kv}
}

func (r *ProfileRepository) Get(ctx context.Context, uid string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	ok, err := getJSON(ctx, r.kv, profileKey(uid), &profile)
	if err != nil || !ok {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile *domain.UserProfile) error {
	return putJSON(ctx, r.kv, profileKey(profile.UID), profile)
}

func (r *ProfileRepository) Delete(ctx context.Context, uid string) error {
	return r.kv.Delete(ctx, profileKey(uid))
}
