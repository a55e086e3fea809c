package ports

import "context"

// RegisterInput carries a registration request. Role defaults to STUDENT
// when empty.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	Role      string
}

// AuthResult is returned by both Register and Login.
type AuthResult struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// AuthService defines registration and login.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}
