package kvstore

import (
	"context"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/repository/ports"
)

type SessionRepository struct {
	kv ports.KV
}

func NewSessionRepo(kv ports.KV) *SessionRepository {
	return &SessionRepository{kv: kv}
}

func (r *SessionRepository) Put(ctx context.Context, user domain.AuthUser) error {
	return putJSON(ctx, r.kv, authUserKey(user.UID), user)
}

func (r *SessionRepository) Get(ctx context.Context, uid string) (*domain.AuthUser, error) {
	var user domain.AuthUser
	ok, err := getJSON(ctx, r.kv, authUserKey(uid), &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

func (r *SessionRepository) Delete(ctx context.Context, uid string) error {
	return r.kv.Delete(ctx, authUserKey(uid))
}
