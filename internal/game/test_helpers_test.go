package game

import (
	"testing"

	"github.com/cardtable/blackjack/internal/deck"
)

// stackedShoe deals a fixed card sequence so tests control every deal.
type stackedShoe struct {
	cards []deck.Card
	pos   int
}

func stacked(t *testing.T, codes ...string) *stackedShoe {
	t.Helper()
	cards, err := deck.ParseCards(codes...)
	if err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return &stackedShoe{cards: cards}
}

func (s *stackedShoe) Deal() deck.Card {
	if s.pos >= len(s.cards) {
		panic("stacked shoe exhausted")
	}
	c := s.cards[s.pos]
	s.pos++
	return c
}

func (s *stackedShoe) CardsLeft() int     { return len(s.cards) - s.pos }
func (s *stackedShoe) RunningCount() int  { return 0 }
func (s *stackedShoe) TrueCount() float64 { return 0 }

func cards(t *testing.T, codes ...string) []deck.Card {
	t.Helper()
	cs, err := deck.ParseCards(codes...)
	if err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return cs
}

// newTestTable builds a table over a stacked shoe with the standard
// test bankroll of 100 and limits 10..500.
func newTestTable(t *testing.T, codes ...string) *Table {
	t.Helper()
	return NewTable(nil,
		WithShoe(stacked(t, codes...)),
		WithBalance(100),
		WithLimits(10, 500),
	)
}
