package game

import "github.com/cardtable/blackjack/internal/deck"

// HandValue returns the best blackjack total for a set of cards and
// whether that total is soft. Every Ace is counted as 1 first, then
// promoted to 11 one at a time while the total stays at or under 21.
// The result is the maximal non-busting total, or the all-Aces-low
// total if even that busts.
func HandValue(cards []deck.Card) (total int, soft bool) {
	aces := 0
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for aces > 0 && total+10 <= 21 {
		total += 10
		soft = true
		aces--
	}
	return total, soft
}

// IsBust reports whether the best total exceeds 21.
func IsBust(cards []deck.Card) bool {
	total, _ := HandValue(cards)
	return total > 21
}

// IsBlackjack reports whether the cards are a natural: exactly two
// cards totalling 21. Only Ace plus a ten-value card can reach this,
// since HandValue already maximises.
func IsBlackjack(cards []deck.Card) bool {
	if len(cards) != 2 {
		return false
	}
	total, _ := HandValue(cards)
	return total == 21
}

// IsPair reports whether the cards are exactly two of equal blackjack
// value. King and Queen form a pair; rank identity does not matter.
func IsPair(cards []deck.Card) bool {
	return len(cards) == 2 && cards[0].Value() == cards[1].Value()
}

// HandStatus is the tagged state of a player hand. A hand leaves
// Playing exactly one way, so "finished but not via bust, stand,
// double or blackjack" is unrepresentable.
type HandStatus int

const (
	HandPlaying HandStatus = iota
	HandStood
	HandDoubled
	HandBusted
	HandBlackjack
)

// String returns a short label for the status
func (s HandStatus) String() string {
	switch s {
	case HandPlaying:
		return "playing"
	case HandStood:
		return "stood"
	case HandDoubled:
		return "doubled"
	case HandBusted:
		return "busted"
	case HandBlackjack:
		return "blackjack"
	default:
		return "unknown"
	}
}

// Hand is one player hand within a round: its cards in deal order,
// the bet riding on it, and its status. The dealer's cards are a bare
// slice on the Round since the dealer has no bet and no choices.
type Hand struct {
	Cards  []deck.Card
	Bet    int
	Status HandStatus
}

func newHand(bet int, cards ...deck.Card) *Hand {
	h := &Hand{
		Cards: make([]deck.Card, 0, 8),
		Bet:   bet,
	}
	h.Cards = append(h.Cards, cards...)
	return h
}

func (h *Hand) addCard(c deck.Card) {
	h.Cards = append(h.Cards, c)
}

// Value returns the hand's best total.
func (h *Hand) Value() int {
	total, _ := HandValue(h.Cards)
	return total
}

// Soft reports whether the best total counts an Ace as 11.
func (h *Hand) Soft() bool {
	_, soft := HandValue(h.Cards)
	return soft
}

// Finished reports whether the hand can take no further action.
func (h *Hand) Finished() bool {
	return h.Status != HandPlaying
}

// Busted reports whether the hand went over 21.
func (h *Hand) Busted() bool {
	return h.Status == HandBusted
}

// CanDouble reports whether doubling is permitted: exactly two cards
// on a hand that is still playing. Balance is checked by the table.
func (h *Hand) CanDouble() bool {
	return len(h.Cards) == 2 && h.Status == HandPlaying
}

// CanSplit reports whether the hand is splittable: two cards of equal
// value on a hand still playing. The split cap and balance are checked
// by the table.
func (h *Hand) CanSplit() bool {
	return h.Status == HandPlaying && IsPair(h.Cards)
}
