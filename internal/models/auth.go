// Package models holds the wire and domain types exchanged with the
// platform's admin API.
package models

// TokenPair is the credential triple as issued by the auth endpoints.
// ExpiresIn is a server-defined TTL in seconds; callers convert it to an
// absolute deadline at receipt time.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// LoginResult is the response of POST /auth/login.
type LoginResult struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// Identity is the subset of the logged-in admin's attributes shown in the
// console prompt. Derived from the login response or, for restored
// sessions, from the access token claims.
type Identity struct {
	UserID string
	Email  string
	Role   string
}
