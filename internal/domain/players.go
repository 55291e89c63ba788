package domain

import "fmt"

const (
	MinPlayers         = 1
	BasePlayerLimit    = 5
	InvaderPlayerLimit = 7
)

// MaxPlayers returns the largest table size the feature set supports.
func MaxPlayers(f Features) int {
	if f.InvadersFromAfar {
		return InvaderPlayerLimit
	}
	return BasePlayerLimit
}

// ValidatePlayerCount checks n against the allowed range for f.
func ValidatePlayerCount(n int, f Features) error {
	if limit := MaxPlayers(f); n < MinPlayers || n > limit {
		return fmt.Errorf("%w: player count must be from %d to %d", ErrInvalidPlayerCount, MinPlayers, limit)
	}
	return nil
}
