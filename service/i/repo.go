package i

import (
	dmn "github.com/codeprimate/webmaze-api/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze record in the repository.
	Save(maze *dmn.Maze) error

	// ByID retrieves a maze by its unique ID.
	// Returns an error if the maze is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.Maze, error)

	// ByIDs retrieves the mazes for the given IDs, preserving the input
	// order and skipping IDs that no longer exist.
	ByIDs(ids []uuid.UUID) ([]*dmn.Maze, error)

	// Recent retrieves up to limit mazes, newest first.
	Recent(limit int) ([]*dmn.Maze, error)
}
