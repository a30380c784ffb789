package i

import (
	dmn "github.com/codeprimate/webmaze-api/domain"
)

// Authenticator manages user registration and sign-in.
type Authenticator interface {
	// Register creates a user from a username and plain password.
	Register(string, string) error

	// SignIn verifies credentials and returns the user with a signed
	// access token.
	SignIn(string, string) (*dmn.User, string, error)
}
