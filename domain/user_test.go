package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	t.Run("Valid user is created with a hashed password", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner",
			PlainPassword: "correct-horse-battery-staple",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "correct-horse-battery-staple", user.PasswordHash)
		assert.Zero(t, user.MazesCreated)

		assert.True(t, user.VerifyPassword("correct-horse-battery-staple"))
		assert.False(t, user.VerifyPassword("wrong password"))
	})

	t.Run("Username rules are enforced", func(t *testing.T) {
		cases := []struct {
			name     string
			username string
		}{
			{"too short", "ab"},
			{"too long", "this_username_is_way_too_long_to_accept"},
			{"bad characters", "not ok!"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewUser(UserConfig{
					ID:            uuid.New(),
					Username:      tc.username,
					PlainPassword: "correct-horse-battery-staple",
				})
				assert.Error(t, err)
			})
		}
	})

	t.Run("Weak passwords are rejected", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner",
			PlainPassword: "password",
		})
		assert.Error(t, err)
	})
}
