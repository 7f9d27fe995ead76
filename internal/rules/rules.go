// Package rules holds the table rule configuration, the additive
// house-edge model, and the risk-of-ruin helper. Everything here is
// stateless arithmetic consumed before a round begins; nothing touches
// the engine.
package rules

import "fmt"

// DoubleRestriction enumerates which starting totals may be doubled.
type DoubleRestriction int

const (
	DoubleAny DoubleRestriction = iota
	DoubleNineToEleven
	DoubleTenToEleven
)

// String returns the config-file spelling of the restriction
func (d DoubleRestriction) String() string {
	switch d {
	case DoubleAny:
		return "any"
	case DoubleNineToEleven:
		return "9-11"
	case DoubleTenToEleven:
		return "10-11"
	default:
		return "unknown"
	}
}

// ParseDoubleRestriction parses the config-file spelling ("any",
// "9-11", "10-11"). The empty string means unrestricted.
func ParseDoubleRestriction(s string) (DoubleRestriction, error) {
	switch s {
	case "", "any":
		return DoubleAny, nil
	case "9-11":
		return DoubleNineToEleven, nil
	case "10-11":
		return DoubleTenToEleven, nil
	default:
		return DoubleAny, fmt.Errorf("invalid double restriction %q (want any, 9-11 or 10-11)", s)
	}
}

// Rules is the typed rule record for a table. Each field maps to one
// adjustment in the house-edge model.
type Rules struct {
	DealerHitsSoft17  bool
	DoubleAfterSplit  bool
	DoubleRestriction DoubleRestriction
	ResplitAces       bool
	LateSurrender     bool
}

// Default returns the rules this engine actually plays: six-deck H17
// with unrestricted doubling.
func Default() Rules {
	return Rules{
		DealerHitsSoft17: true,
	}
}
