package game

import "errors"

// Sentinel errors for the two recoverable failure kinds the engine
// reports. Callers match with errors.Is; the wrapped text carries the
// specific reason (below minimum, finished hand, split cap, ...).
var (
	// ErrInvalidBet is returned when a bet is outside the table limits
	// or exceeds the available balance.
	ErrInvalidBet = errors.New("invalid bet")

	// ErrIllegalAction is returned when an action's preconditions are
	// not met: acting on a finished hand, doubling with more than two
	// cards, splitting unequal values, exceeding the split cap, or
	// acting outside the player-turn state.
	ErrIllegalAction = errors.New("illegal action")
)
