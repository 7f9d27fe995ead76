package rules

import "math"

// Defaults for the risk-of-ruin model: a counter playing a modest
// spread has roughly a 0.4% edge per unit wagered at 1.15 units of
// standard deviation per round.
const (
	DefaultUnitEdge = 0.004
	DefaultStdDev   = 1.15
)

// RiskOfRuin returns the probability of losing a bankroll of the
// given size in betting units before doubling it, under the standard
// gambler's-ruin approximation exp(-2·edge/σ² · units). An edge of
// zero or less ruins with certainty.
func RiskOfRuin(bankrollUnits, edge, stddev float64) float64 {
	if edge <= 0 {
		return 1
	}
	variance := stddev * stddev
	ror := math.Exp(-2 * edge / variance * bankrollUnits)
	if ror > 1 {
		return 1
	}
	return ror
}
