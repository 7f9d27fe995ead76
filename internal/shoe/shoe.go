// Package shoe implements a multi-deck dealing shoe with Hi-Lo card
// counting. The shoe owns the draw pile and discard pile, reshuffles
// itself when penetration runs out, and exposes the running and true
// counts that the strategy advisor consumes.
package shoe

import (
	rand "math/rand/v2"

	"github.com/cardtable/blackjack/internal/deck"
)

const deckSize = 52

// Default table configuration: six decks dealt to 80% penetration.
const (
	DefaultDecks       = 6
	DefaultPenetration = 0.8
)

// Shoe holds the draw pile and discard pile for one table session.
// It persists across rounds; everything else in a round is transient.
type Shoe struct {
	rng         *rand.Rand
	numDecks    int
	penetration float64

	cards        []deck.Card
	discards     []deck.Card
	runningCount int
}

// New creates a shoe with the given number of decks and penetration
// fraction, shuffled and ready to deal. The RNG is required so shuffle
// order is reproducible in tests.
func New(rng *rand.Rand, numDecks int, penetration float64) *Shoe {
	if rng == nil {
		panic("rng is required for shoe creation")
	}
	if numDecks < 1 {
		numDecks = DefaultDecks
	}
	if penetration <= 0 || penetration > 1 {
		penetration = DefaultPenetration
	}

	s := &Shoe{
		rng:         rng,
		numDecks:    numDecks,
		penetration: penetration,
	}
	s.Reshuffle()
	return s
}

// Reshuffle returns every card to the draw pile, shuffles, and clears
// the discard pile and the running count.
func (s *Shoe) Reshuffle() {
	total := s.numDecks * deckSize
	s.cards = s.cards[:0]
	if cap(s.cards) < total {
		s.cards = make([]deck.Card, 0, total)
	}

	for d := 0; d < s.numDecks; d++ {
		for suit := deck.Hearts; suit <= deck.Spades; suit++ {
			for rank := deck.Ace; rank <= deck.King; rank++ {
				s.cards = append(s.cards, deck.NewCard(rank, suit))
			}
		}
	}

	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})

	s.discards = s.discards[:0]
	s.runningCount = 0
}

// Deal removes and returns the top card. If the shoe has been dealt
// past its penetration point it reshuffles first. The check happens
// lazily on every deal, so a reshuffle can land mid-round between a
// player's hit and the dealer's draw. That timing is deliberate.
func (s *Shoe) Deal() deck.Card {
	if s.NeedsReshuffle() {
		s.Reshuffle()
	}

	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	s.discards = append(s.discards, card)
	s.runningCount += hiLoValue(card)
	return card
}

// NeedsReshuffle reports whether the draw pile has been dealt past the
// penetration point.
func (s *Shoe) NeedsReshuffle() bool {
	return float64(len(s.cards)) < (1-s.penetration)*float64(s.numDecks*deckSize)
}

// CardsLeft returns the number of cards remaining in the draw pile.
func (s *Shoe) CardsLeft() int {
	return len(s.cards)
}

// DiscardCount returns the number of cards in the discard pile.
func (s *Shoe) DiscardCount() int {
	return len(s.discards)
}

// NumDecks returns the number of decks the shoe was built from.
func (s *Shoe) NumDecks() int {
	return s.numDecks
}

// RunningCount returns the Hi-Lo running count of all cards dealt
// since the last reshuffle.
func (s *Shoe) RunningCount() int {
	return s.runningCount
}

// TrueCount returns the running count normalised by decks remaining.
// An empty draw pile yields 0 rather than dividing by zero.
func (s *Shoe) TrueCount() float64 {
	if len(s.cards) == 0 {
		return 0
	}
	decksLeft := float64(len(s.cards)) / deckSize
	return float64(s.runningCount) / decksLeft
}

// hiLoValue maps a card to its Hi-Lo count contribution: 2-6 are +1,
// tens and Aces are -1, 7-9 are neutral.
func hiLoValue(c deck.Card) int {
	switch {
	case c.Rank >= deck.Two && c.Rank <= deck.Six:
		return 1
	case c.IsTenValue() || c.IsAce():
		return -1
	default:
		return 0
	}
}
