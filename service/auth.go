package service

import (
	"errors"
	"time"

	dmn "github.com/codeprimate/webmaze-api/domain"
	"github.com/codeprimate/webmaze-api/service/i"
	"github.com/google/uuid"
)

const accessTokenLifetime = 24 * time.Hour

// Auth handles user registration and sign-in on top of the user
// repository and the token service.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
}

// NewAuthService creates an Auth service with the given dependencies.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer) (i.Authenticator, error) {
	if userRepo == nil || tokenizer == nil {
		return nil, errors.New("auth service requires a user repository and a tokenizer")
	}

	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
	}, nil
}

// Register creates a user from a username and plain password.
func (a *Auth) Register(username, password string) error {
	userConfig := dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	user, err := dmn.NewUser(userConfig)
	if err != nil {
		return err
	}

	err = a.userRepo.Save(user)
	if err != nil {
		return err
	}

	return nil
}

// SignIn verifies credentials and returns the user with a signed access
// token. The error never reveals which of the username or password was
// wrong.
func (a *Auth) SignIn(username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", errors.New("invalid username or password")
	}

	if !user.VerifyPassword(password) {
		return nil, "", errors.New("invalid username or password")
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID,
		"username": user.Username,
	}, accessTokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
