// Package strategy implements the basic-strategy advisor and the
// Hi-Lo deviation overrides. Recommendations come from the standard
// multi-deck, dealer-hits-soft-17 charts; at extreme true counts a
// fixed list of index plays replaces the chart answer.
package strategy

import (
	"github.com/cardtable/blackjack/internal/deck"
	"github.com/cardtable/blackjack/internal/game"
)

// Action is the advisor's recommendation for a hand.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	// DoubleOrStand means double if the table allows it, otherwise
	// stand (soft 18/19 spots where hitting is wrong either way).
	DoubleOrStand
	Split
)

// String returns the chart label for an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case DoubleOrStand:
		return "double or stand"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// Recommend returns the optimal action for the hand against the
// dealer's upcard at the given true count. Classification order:
// pair, then soft total, then hard total; deviation overrides are
// applied last and the first matching rule wins.
func Recommend(cards []deck.Card, upcard deck.Card, trueCount float64) Action {
	up := upcardValue(upcard)

	base := baseAction(cards, up)
	return applyDeviations(cards, up, trueCount, base)
}

// RecommendTotal is Recommend without the pair classification: the
// chart answer for the hand played as a plain total. Callers fall
// back to it when a recommended split is not actually available
// (split cap reached or balance short).
func RecommendTotal(cards []deck.Card, upcard deck.Card, trueCount float64) Action {
	up := upcardValue(upcard)

	base := totalAction(cards, up)
	return applyDeviations(cards, up, trueCount, base)
}

// upcardValue normalises a dealer upcard for chart lookup: cards sum
// with Ace=1 internally, but charts key the Ace as 11.
func upcardValue(c deck.Card) int {
	v := c.Value()
	if v == 1 {
		return 11
	}
	return v
}

func baseAction(cards []deck.Card, up int) Action {
	if game.IsPair(cards) && shouldSplit(cards[0].Value(), up) {
		return Split
	}
	return totalAction(cards, up)
}

func totalAction(cards []deck.Card, up int) Action {
	total, soft := game.HandValue(cards)
	if soft && total >= 13 && total <= 20 {
		return softAction(total, up)
	}
	return hardAction(total, up)
}

// hardAction is the hard-total chart. Totals of 17 and above always
// stand, 8 and below always hit.
func hardAction(total, up int) Action {
	switch {
	case total >= 17:
		return Stand
	case total <= 8:
		return Hit
	}

	switch total {
	case 9:
		if up >= 3 && up <= 6 {
			return Double
		}
		return Hit
	case 10:
		if up >= 2 && up <= 9 {
			return Double
		}
		return Hit
	case 11:
		return Double
	case 12:
		if up >= 4 && up <= 6 {
			return Stand
		}
		return Hit
	default: // 13-16
		if up >= 2 && up <= 6 {
			return Stand
		}
		return Hit
	}
}

// softAction is the soft-total chart for totals 13-20.
func softAction(total, up int) Action {
	switch total {
	case 13, 14:
		if up == 5 || up == 6 {
			return Double
		}
		return Hit
	case 15, 16:
		if up >= 4 && up <= 6 {
			return Double
		}
		return Hit
	case 17:
		if up >= 3 && up <= 6 {
			return Double
		}
		return Hit
	case 18:
		switch {
		case up >= 2 && up <= 6:
			return DoubleOrStand
		case up == 7 || up == 8:
			return Stand
		default:
			return Hit
		}
	case 19:
		if up == 6 {
			return DoubleOrStand
		}
		return Stand
	default: // 20
		return Stand
	}
}

// shouldSplit is the pair chart, keyed by the pair's card value
// (Ace=1). Fives and tens never split; Aces and eights always do.
func shouldSplit(pairValue, up int) bool {
	switch pairValue {
	case 1:
		return true
	case 2, 3:
		return up >= 2 && up <= 7
	case 4:
		return up == 5 || up == 6
	case 6:
		return up >= 2 && up <= 6
	case 7:
		return up <= 7
	case 8:
		return true
	case 9:
		return (up >= 2 && up <= 6) || up == 8 || up == 9
	default: // 5, 10
		return false
	}
}
