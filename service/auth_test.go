package service

import (
	"errors"
	"testing"
	"time"

	dmn "github.com/codeprimate/webmaze-api/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeUserRepo keeps users in memory, keyed by username.
type fakeUserRepo struct {
	users    map[string]*dmn.User
	failSave error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*dmn.User)}
}

func (f *fakeUserRepo) Save(user *dmn.User) error {
	if f.failSave != nil {
		return f.failSave
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) ByUsername(username string) (*dmn.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

// fakeTokenizer hands out a canned token and records what it signed.
type fakeTokenizer struct {
	token      string
	failWith   error
	lastClaims map[string]interface{}
	lastExp    time.Duration
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.lastClaims = claims
	f.lastExp = expTime
	return f.token, nil
}

func (f *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("decode is not part of these tests")
}

const testPassword = "correct-horse-battery-staple"

func TestAuthRegister(t *testing.T) {
	t.Run("Registering persists a user with a hashed password", func(t *testing.T) {
		repo := newFakeUserRepo()
		auth, err := NewAuthService(repo, &fakeTokenizer{token: "tok"})
		assert.NoError(t, err)

		assert.NoError(t, auth.Register("maze_runner", testPassword))

		user, err := repo.ByUsername("maze_runner")
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.NotEqual(t, testPassword, user.PasswordHash)
		assert.True(t, user.VerifyPassword(testPassword))
	})

	t.Run("Invalid credentials never reach the repository", func(t *testing.T) {
		repo := newFakeUserRepo()
		auth, err := NewAuthService(repo, &fakeTokenizer{token: "tok"})
		assert.NoError(t, err)

		assert.Error(t, auth.Register("maze_runner", "password"))
		assert.Error(t, auth.Register("x", testPassword))
		assert.Empty(t, repo.users)
	})

	t.Run("Repository failures propagate", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.failSave = errors.New("connection lost")
		auth, err := NewAuthService(repo, &fakeTokenizer{token: "tok"})
		assert.NoError(t, err)

		assert.ErrorContains(t, auth.Register("maze_runner", testPassword), "connection lost")
	})
}

func TestAuthSignIn(t *testing.T) {
	t.Run("Valid credentials return the user and a token", func(t *testing.T) {
		repo := newFakeUserRepo()
		tokenizer := &fakeTokenizer{token: "signed-token"}
		auth, err := NewAuthService(repo, tokenizer)
		assert.NoError(t, err)
		assert.NoError(t, auth.Register("maze_runner", testPassword))

		user, token, err := auth.SignIn("maze_runner", testPassword)
		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, "maze_runner", user.Username)

		assert.Equal(t, user.ID, tokenizer.lastClaims["userID"])
		assert.Equal(t, "maze_runner", tokenizer.lastClaims["username"])
		assert.Equal(t, 24*time.Hour, tokenizer.lastExp)
	})

	t.Run("Wrong password and unknown username fail alike", func(t *testing.T) {
		repo := newFakeUserRepo()
		auth, err := NewAuthService(repo, &fakeTokenizer{token: "tok"})
		assert.NoError(t, err)
		assert.NoError(t, auth.Register("maze_runner", testPassword))

		_, _, badPassword := auth.SignIn("maze_runner", "not-the-password")
		_, _, badUsername := auth.SignIn("nobody", testPassword)
		assert.Error(t, badPassword)
		assert.Error(t, badUsername)
		assert.Equal(t, badUsername.Error(), badPassword.Error())
	})

	t.Run("Tokenizer failures propagate", func(t *testing.T) {
		repo := newFakeUserRepo()
		tokenizer := &fakeTokenizer{failWith: errors.New("no signing key")}
		auth, err := NewAuthService(repo, tokenizer)
		assert.NoError(t, err)
		assert.NoError(t, auth.Register("maze_runner", testPassword))

		_, _, err = auth.SignIn("maze_runner", testPassword)
		assert.ErrorContains(t, err, "no signing key")
	})
}

func TestNewAuthService(t *testing.T) {
	t.Run("Missing dependencies are rejected", func(t *testing.T) {
		_, err := NewAuthService(nil, &fakeTokenizer{})
		assert.Error(t, err)

		_, err = NewAuthService(newFakeUserRepo(), nil)
		assert.Error(t, err)
	})
}
