package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/cardtable/blackjack/internal/deck"
	"github.com/cardtable/blackjack/internal/shoe"
)

// Shoe is the card source the engine draws from. The production
// implementation is shoe.Shoe, which reshuffles itself internally;
// tests inject stacked sources for deterministic deals.
type Shoe interface {
	Deal() deck.Card
	CardsLeft() int
	RunningCount() int
	TrueCount() float64
}

// Default session parameters when no options are given.
const (
	DefaultBalance = 1000
	DefaultMinBet  = 10
	DefaultMaxBet  = 500
)

// Table owns one blackjack session: the shoe, the player's balance,
// the table limits and the round currently in play. It assumes a
// single logical caller; nothing here is safe for concurrent use.
type Table struct {
	shoe    Shoe
	balance int
	minBet  int
	maxBet  int
	logger  *log.Logger

	round   *Round
	message string
}

// TableOption configures a Table during creation.
type TableOption func(*Table)

// WithShoe replaces the default six-deck shoe.
func WithShoe(s Shoe) TableOption {
	return func(t *Table) { t.shoe = s }
}

// WithBalance sets the starting balance. Default is 1000.
func WithBalance(balance int) TableOption {
	return func(t *Table) { t.balance = balance }
}

// WithLimits sets the minimum and maximum bet. Defaults are 10 and 500.
func WithLimits(minBet, maxBet int) TableOption {
	return func(t *Table) {
		t.minBet = minBet
		t.maxBet = maxBet
	}
}

// WithLogger sets the logger used for engine events.
func WithLogger(logger *log.Logger) TableOption {
	return func(t *Table) { t.logger = logger }
}

// NewTable creates a session with a freshly shuffled six-deck shoe
// unless WithShoe overrides it. The RNG seeds the default shoe and is
// required so shuffle order stays reproducible under test seeds.
func NewTable(rng *rand.Rand, opts ...TableOption) *Table {
	t := &Table{
		balance: DefaultBalance,
		minBet:  DefaultMinBet,
		maxBet:  DefaultMaxBet,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.shoe == nil {
		if rng == nil {
			panic("rng is required when no shoe is provided")
		}
		t.shoe = shoe.New(rng, shoe.DefaultDecks, shoe.DefaultPenetration)
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	return t
}

// Balance returns the current balance.
func (t *Table) Balance() int {
	return t.balance
}

// MinBet returns the table minimum.
func (t *Table) MinBet() int {
	return t.minBet
}

// MaxBet returns the table maximum.
func (t *Table) MaxBet() int {
	return t.maxBet
}

// Shoe returns the card source, for count and depth queries.
func (t *Table) Shoe() Shoe {
	return t.shoe
}

// Message returns the free-text status set by the last operation.
func (t *Table) Message() string {
	return t.message
}

// State returns the current round state, or StateNoRound between rounds.
func (t *Table) State() RoundState {
	if t.round == nil {
		return StateNoRound
	}
	return t.round.State
}

// Round returns the round in play, or nil between rounds. Exposed for
// the snapshot layer and tests; mutations go through Table methods.
func (t *Table) Round() *Round {
	return t.round
}
