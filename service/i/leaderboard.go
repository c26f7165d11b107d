package i

import "context"

// ScoredMember is one entry of a sorted set.
type ScoredMember struct {
	Member string
	Score  float64
}

// Leaderboard keeps the best scores per key. Lower scores rank first.
type Leaderboard interface {
	// Record adds member with score under key.
	Record(ctx context.Context, key string, score float64, member string) error

	// Top returns up to n members with the lowest scores, best first.
	Top(ctx context.Context, key string, n int64) ([]ScoredMember, error)
}
