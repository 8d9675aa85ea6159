package models

// UserProfile describes the currently authenticated user. It exists only
// while a session is active and is destroyed on logout.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
