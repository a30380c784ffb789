package i

import "context"

// ScoredMember is one board entry: an opaque member key with its score.
type ScoredMember struct {
	Member string
	Score  float64
}

// SortedBoard defines the interface for score-ranked member storage.
type SortedBoard interface {
	// Rank adds a member with the given score, or updates its score if
	// the member is already ranked.
	Rank(ctx context.Context, boardKey string, score float64, member string) error

	// Tops retrieves up to amount members with the highest scores,
	// best first, without removing them.
	Tops(ctx context.Context, boardKey string, amount int64) ([]ScoredMember, error)

	// Prune drops everything but the keep highest-scored members,
	// returning how many were removed.
	Prune(ctx context.Context, boardKey string, keep int64) (int64, error)

	// Count returns the number of ranked members.
	Count(ctx context.Context, boardKey string) int64
}
