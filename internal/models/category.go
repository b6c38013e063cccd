package models

import "time"

// Category is a service category users can tag their business with.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	UserCount int       `json:"userCount"`
	CreatedAt time.Time `json:"createdAt"`
}
