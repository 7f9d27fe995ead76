package strategy

import (
	"github.com/cardtable/blackjack/internal/deck"
	"github.com/cardtable/blackjack/internal/game"
)

// DeviationRule is a count-triggered departure from basic strategy.
// A rule matches on an exact hard total (or the pair-of-tens case) and
// an exact dealer upcard; the threshold compares against the true
// count in the direction given by Below.
type DeviationRule struct {
	HardTotal  int  // matched hard total; ignored when PairOfTens is set
	PairOfTens bool // matches any two ten-valued cards, regardless of rank
	Upcard     int  // dealer upcard 2-11, Ace as 11
	Threshold  float64
	Below      bool // trigger when trueCount < Threshold instead of >=
	Override   Action
}

func (r DeviationRule) matches(pairOfTens bool, total int, soft bool, up int, trueCount float64) bool {
	if up != r.Upcard {
		return false
	}
	if r.PairOfTens {
		if !pairOfTens {
			return false
		}
	} else if soft || total != r.HardTotal {
		return false
	}
	if r.Below {
		return trueCount < r.Threshold
	}
	return trueCount >= r.Threshold
}

// deviations is the ordered index-play list; the first matching rule
// replaces the chart answer.
var deviations = []DeviationRule{
	{HardTotal: 16, Upcard: 10, Threshold: 0, Override: Stand},
	{HardTotal: 16, Upcard: 9, Threshold: 5, Override: Stand},
	{HardTotal: 15, Upcard: 10, Threshold: 4, Override: Stand},
	{PairOfTens: true, Upcard: 5, Threshold: 5, Override: Split},
	{PairOfTens: true, Upcard: 6, Threshold: 4, Override: Split},
	{HardTotal: 10, Upcard: 10, Threshold: 4, Override: Double},
	{HardTotal: 10, Upcard: 11, Threshold: 3, Override: Double},
	{HardTotal: 12, Upcard: 3, Threshold: 2, Override: Stand},
	{HardTotal: 12, Upcard: 2, Threshold: 3, Override: Stand},
	{HardTotal: 11, Upcard: 11, Threshold: 1, Override: Double},
	{HardTotal: 9, Upcard: 2, Threshold: 1, Override: Double},
	{HardTotal: 9, Upcard: 7, Threshold: 3, Override: Double},
	{HardTotal: 13, Upcard: 2, Threshold: -1, Below: true, Override: Hit},
	{HardTotal: 12, Upcard: 4, Threshold: 0, Below: true, Override: Hit},
}

// applyDeviations checks the index plays against the hand. Hands the
// chart already says to split keep their split; only the explicit
// pair-of-tens rules override a pair decision.
func applyDeviations(cards []deck.Card, up int, trueCount float64, base Action) Action {
	total, soft := game.HandValue(cards)
	pairOfTens := game.IsPair(cards) && cards[0].Value() == 10

	if base == Split && !pairOfTens {
		return base
	}

	for _, rule := range deviations {
		if rule.matches(pairOfTens, total, soft, up, trueCount) {
			return rule.Override
		}
	}
	return base
}
