package model

import "time"

// Verb is the stored verb record a suggestion category is decorated with.
// Name matches a registry category (e.g. "Workout").
type Verb struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	Color     string    `json:"color,omitempty"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsZero reports whether v is the "not found" value.
func (v Verb) IsZero() bool {
	return v.ID == ""
}
