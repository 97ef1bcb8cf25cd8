package ports

import (
	"context"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

// SessionRepository tracks the auth-session marker per user. Presence of the
// marker is what makes a session live; deleting it signs the user out
// everywhere regardless of outstanding tokens.
type SessionRepository interface {
	Put(ctx context.Context, user domain.AuthUser) error
	Get(ctx context.Context, uid string) (*domain.AuthUser, error)
	Delete(ctx context.Context, uid string) error
}
