package kvstore

import (
	"context"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/repository/ports"
)

// CredentialRepository keeps the whole credential table as one document
// under prefer_users, mirroring the original mock database: a map of uid to
// user record.
type CredentialRepository struct {
	kv ports.KV
}

func NewCredentialRepo(kv ports.KV) *CredentialRepository {
	return &CredentialRepository{kv: kv}
}

func (r *CredentialRepository) Create(ctx context.Context, record *domain.UserRecord) error {
	return r.kv.Tx(ctx, func(tx ports.KVTx) error {
		users := map[string]domain.UserRecord{}
		if _, err := getJSON(ctx, tx, keyUsers, &users); err != nil {
			return err
		}
		users[record.UID] = *record
		return putJSON(ctx, tx, keyUsers, users)
	})
}

func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	return r.find(ctx, func(u domain.UserRecord) bool {
		return u.Email == email
	})
}

func (r *CredentialRepository) FindByProvider(ctx context.Context, email, provider string) (*domain.UserRecord, error) {
	return r.find(ctx, func(u domain.UserRecord) bool {
		return u.Email == email && u.AuthProvider == provider
	})
}

func (r *CredentialRepository) FindByID(ctx context.Context, uid string) (*domain.UserRecord, error) {
	users := map[string]domain.UserRecord{}
	if _, err := getJSON(ctx, r.kv, keyUsers, &users); err != nil {
		return nil, err
	}
	if u, ok := users[uid]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *CredentialRepository) find(ctx context.Context, match func(domain.UserRecord) bool) (*domain.UserRecord, error) {
	users := map[string]domain.UserRecord{}
	if _, err := getJSON(ctx, r.kv, keyUsers, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}
