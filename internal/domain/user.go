package domain

import "time"

// Auth providers recognised by the mock identity layer.
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
	ProviderApple  = "apple"
)

// UserRecord is an entry in the credential table. It mirrors the shape the
// identity layer persists: fabricated federated users carry no password.
type UserRecord struct {
	UID          string    `json:"uid"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	AuthProvider string    `json:"authProvider"`
	PasswordHash []byte    `json:"passwordHash,omitempty"`
	PasswordSalt []byte    `json:"passwordSalt,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DisplayName joins the stored name parts the way the sign-in flow presents
// them.
func (r *UserRecord) DisplayName() string {
	if r.FirstName == "" && r.LastName == "" {
		return ""
	}
	if r.LastName == "" {
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}

// AuthUser is the authenticated identity attached to a session.
type AuthUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// UserProfile is the per-user document holding identity echoes and travel
// preferences. It is replaced wholesale on every write.
type UserProfile struct {
	UID                  string       `json:"uid"`
	Email                string       `json:"email"`
	FirstName            string       `json:"firstName,omitempty"`
	LastName             string       `json:"lastName,omitempty"`
	PreferencesCompleted bool         `json:"preferencesCompleted"`
	Preferences          *Preferences `json:"preferences,omitempty"`
	LastLogin            *time.Time   `json:"lastLogin,omitempty"`
	CreatedAt            time.Time    `json:"createdAt"`
}
