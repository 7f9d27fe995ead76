package rules

import (
	"fmt"
	"math"
)

// baseEdge is the house edge percentage per deck count before rule
// adjustments, following Stanford Wong's chart.
var baseEdge = map[int]float64{
	1: 0.00,
	2: 0.32,
	4: 0.47,
	6: 0.52,
	8: 0.55,
}

// Rule adjustments in edge percentage points. Negative values favour
// the player.
const (
	adjH17           = 0.20
	adjDAS           = -0.14
	adjDoubleNineUp  = 0.08
	adjDoubleTenUp   = 0.17
	adjResplitAces   = -0.08
	adjLateSurrender = -0.08
)

// EstimateEdge converts a rule configuration and deck count into the
// expected house-edge percentage, rounded to three decimal places.
// Deck counts outside the chart (anything but 1, 2, 4, 6, 8) are an
// error rather than an interpolation.
func EstimateEdge(r Rules, decks int) (float64, error) {
	edge, ok := baseEdge[decks]
	if !ok {
		return 0, fmt.Errorf("no house edge baseline for %d decks", decks)
	}

	if r.DealerHitsSoft17 {
		edge += adjH17
	}
	if r.DoubleAfterSplit {
		edge += adjDAS
	}
	switch r.DoubleRestriction {
	case DoubleNineToEleven:
		edge += adjDoubleNineUp
	case DoubleTenToEleven:
		edge += adjDoubleTenUp
	}
	if r.ResplitAces {
		edge += adjResplitAces
	}
	if r.LateSurrender {
		edge += adjLateSurrender
	}

	return math.Round(edge*1000) / 1000, nil
}
