package ports

import (
	"context"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

// CredentialRepository stores the mock identity layer's user records.
// Lookups return (nil, nil) when no record matches.
type CredentialRepository interface {
	Create(ctx context.Context, record *domain.UserRecord) error
	FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
	FindByProvider(ctx context.Context, email, provider string) (*domain.UserRecord, error)
	FindByID(ctx context.Context, uid string) (*domain.UserRecord, error)
}
