package ports

import (
	"context"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

// ProfileRepository stores the single per-user profile document. Get returns
// (nil, nil) when the user has no profile yet; Save replaces the document
// wholesale.
type ProfileRepository interface {
	Get(ctx context.Context, uid string) (*domain.UserProfile, error)
	Save(ctx context.Context, profile *domain.UserProfile) error
	Delete(ctx context.Context, uid string) error
}
