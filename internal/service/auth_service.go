package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/repository/ports"
	"github.com/AdithyahNair/Prefer/internal/util"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAuthValidation     = errors.New("auth validation failed")
	ErrSessionExpired     = errors.New("session expired or signed out")
)

// Fabricated identities returned by the federated sign-in shims. There is no
// real OAuth exchange behind them.
var providerIdentities = map[string]domain.UserRecord{
	domain.ProviderGoogle: {
		FirstName: "Google",
		LastName:  "User",
		Email:     "google.user@example.com",
	},
	domain.ProviderApple: {
		FirstName: "Apple",
		LastName:  "User",
		Email:     "apple.user@example.com",
	},
}

type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Session is the result of any successful sign-in: a bearer token plus the
// identity it encodes.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.AuthUser
}

type AuthService struct {
	credentials ports.CredentialRepository
	profiles    ports.ProfileRepository
	sessions    ports.SessionRepository
	jwt         *util.JWTManager

	now   func() time.Time
	newID func() string
}

func NewAuthService(
	credentials ports.CredentialRepository,
	profiles ports.ProfileRepository,
	sessions ports.SessionRepository,
	jwtManager *util.JWTManager,
) *AuthService {
	return &AuthService{
		credentials: credentials,
		profiles:    profiles,
		sessions:    sessions,
		jwt:         jwtManager,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// SignUp registers an email/password account and opens a session for it.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*Session, error) {
	email := normalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.Join(ErrAuthValidation, errors.New("a valid email is required"))
	}
	if len(input.Password) < 6 {
		return nil, errors.Join(ErrAuthValidation, errors.New("password must be at least 6 characters"))
	}

	existing, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, salt, err := util.DerivePassword(input.Password)
	if err != nil {
		return nil, err
	}

	record := &domain.UserRecord{
		UID:          "email_" + s.newID(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		AuthProvider: domain.ProviderEmail,
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    s.now(),
	}
	if err := s.credentials.Create(ctx, record); err != nil {
		return nil, err
	}
	if err := s.ensureProfile(ctx, record); err != nil {
		return nil, err
	}
	return s.openSession(ctx, record)
}

// SignIn authenticates an email/password account. Missing accounts and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	record, err := s.credentials.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if record == nil || record.AuthProvider != domain.ProviderEmail {
		return nil, ErrInvalidCredentials
	}
	if !util.VerifyPassword(password, record.PasswordSalt, record.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if err := s.stampLastLogin(ctx, record); err != nil {
		return nil, err
	}
	return s.openSession(ctx, record)
}

// SignInWithProvider opens a session for the fabricated federated identity of
// the given provider, creating its credential record on first use so repeat
// sign-ins resolve to the same user.
func (s *AuthService) SignInWithProvider(ctx context.Context, provider string) (*Session, error) {
	identity, ok := providerIdentities[provider]
	if !ok {
		return nil, errors.Join(ErrAuthValidation, errors.New("unknown auth provider "+provider))
	}

	record, err := s.credentials.FindByProvider(ctx, identity.Email, provider)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = &domain.UserRecord{
			UID:          provider + "_" + s.newID(),
			FirstName:    identity.FirstName,
			LastName:     identity.LastName,
			Email:        identity.Email,
			AuthProvider: provider,
			CreatedAt:    s.now(),
		}
		if err := s.credentials.Create(ctx, record); err != nil {
			return nil, err
		}
		if err := s.ensureProfile(ctx, record); err != nil {
			return nil, err
		}
	} else if err := s.stampLastLogin(ctx, record); err != nil {
		return nil, err
	}
	return s.openSession(ctx, record)
}

// SignOut removes the session marker, invalidating outstanding tokens for
// the user.
func (s *AuthService) SignOut(ctx context.Context, uid string) error {
	return s.sessions.Delete(ctx, uid)
}

// Authenticate resolves a bearer token to its user. A parseable token is not
// enough: the session marker must still be present.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.AuthUser, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrSessionExpired
	}
	user, err := s.sessions.Get(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrSessionExpired
	}
	return user, nil
}

func (s *AuthService) openSession(ctx context.Context, record *domain.UserRecord) (*Session, error) {
	user := domain.AuthUser{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName(),
	}
	if err := s.sessions.Put(ctx, user); err != nil {
		return nil, err
	}
	token, expiresAt, err := s.jwt.Generate(user.UID, user.Email, user.DisplayName)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *AuthService) ensureProfile(ctx context.Context, record *domain.UserRecord) error {
	profile, err := s.profiles.Get(ctx, record.UID)
	if err != nil {
		return err
	}
	if profile != nil {
		return nil
	}
	return s.profiles.Save(ctx, &domain.UserProfile{
		UID:       record.UID,
		Email:     record.Email,
		FirstName: record.FirstName,
		LastName:  record.LastName,
		CreatedAt: s.now(),
	})
}

func (s *AuthService) stampLastLogin(ctx context.Context, record *domain.UserRecord) error {
	profile, err := s.profiles.Get(ctx, record.UID)
	if err != nil {
		return err
	}
	if profile == nil {
		if err := s.ensureProfile(ctx, record); err != nil {
			return err
		}
		if profile, err = s.profiles.Get(ctx, record.UID); err != nil || profile == nil {
			return err
		}
	}
	now := s.now()
	profile.LastLogin = &now
	return s.profiles.Save(ctx, profile)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
