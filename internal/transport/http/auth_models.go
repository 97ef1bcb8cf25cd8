package http

import "time"

// SignUpRequest carries email registration fields.
type SignUpRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// SignInRequest carries email login fields.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser is the sanitized identity returned by auth endpoints.
type SessionUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// SessionResponse is returned by endpoints that open a session.
type SessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      SessionUser `json:"user"`
}
