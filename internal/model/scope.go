package model

// Scope represents the authenticated identity of a request.
type Scope struct {
	UserID   string
	Username string
	Email    string
	UserType string
}
