package models

import "time"

// UserStatus enumerates the moderation states a platform user can be in.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusPending   UserStatus = "pending"
)

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	BusinessName string     `json:"businessName,omitempty"`
	Role         string     `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// UserListParams are the filter/pagination knobs of GET /admin/users.
// Zero values are omitted from the query string.
type UserListParams struct {
	Page    int
	PerPage int
	Query   string
	Status  UserStatus
}

type UserPage struct {
	Users   []User `json:"users"`
	Total   int    `json:"total"`
	Page    int    `json:"page"`
	PerPage int    `json:"perPage"`
}
