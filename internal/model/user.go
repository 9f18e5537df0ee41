package model

// User is the subset of the user record the suggestion flows need.
type User struct {
	ID       string
	Name     string
	TimeZone string
}

// IsZero reports whether u is the "not found" value.
func (u User) IsZero() bool {
	return u.ID == ""
}
