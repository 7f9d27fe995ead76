// Package statistics tracks per-session blackjack results: net units
// per round, outcome tallies and timing. The simulator and the CLI
// both report from it.
package statistics

import (
	"fmt"
	"math"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// RoundResult is the outcome of one settled round.
type RoundResult struct {
	NetUnits  float64 // net win/loss in initial-bet units
	Blackjack bool    // any hand settled as a natural
	Busted    bool    // every player hand busted
	SatOut    bool    // zero-bet practice round
}

// Session accumulates results for one table session. The clock is
// injected so tests can drive elapsed time deterministically.
type Session struct {
	ID    string
	clock quartz.Clock
	start time.Time

	Rounds    int
	SumUnits  float64
	SumUnits2 float64 // sum of squares for variance

	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	Busts      int
	SitOuts    int
}

// NewSession creates a session tracker. A nil clock uses real time.
func NewSession(clock quartz.Clock) *Session {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Session{
		ID:    uuid.NewString(),
		clock: clock,
		start: clock.Now(),
	}
}

// Record incorporates one round result.
func (s *Session) Record(r RoundResult) {
	if r.SatOut {
		s.SitOuts++
		return
	}

	s.Rounds++
	s.SumUnits += r.NetUnits
	s.SumUnits2 += r.NetUnits * r.NetUnits

	switch {
	case r.NetUnits > 0:
		s.Wins++
	case r.NetUnits < 0:
		s.Losses++
	default:
		s.Pushes++
	}
	if r.Blackjack {
		s.Blackjacks++
	}
	if r.Busted {
		s.Busts++
	}
}

// Merge folds another session's tallies into this one. Used when the
// simulate command aggregates parallel sessions.
func (s *Session) Merge(other *Session) {
	s.Rounds += other.Rounds
	s.SumUnits += other.SumUnits
	s.SumUnits2 += other.SumUnits2
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.Busts += other.Busts
	s.SitOuts += other.SitOuts
}

// Mean returns the arithmetic mean of net units per round.
func (s *Session) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumUnits / float64(s.Rounds)
}

// Variance returns the sample variance of net units per round.
func (s *Session) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumUnits2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of net units per round.
func (s *Session) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Elapsed returns how long the session has been running.
func (s *Session) Elapsed() time.Duration {
	return s.clock.Since(s.start)
}

// Report returns a short human-readable summary.
func (s *Session) Report() string {
	return fmt.Sprintf(
		"rounds=%d net=%+.1f units (%.3f/round, sd %.2f) W/L/P %d/%d/%d blackjacks=%d busts=%d elapsed=%s",
		s.Rounds, s.SumUnits, s.Mean(), s.StdDev(),
		s.Wins, s.Losses, s.Pushes, s.Blackjacks, s.Busts,
		s.Elapsed().Round(time.Millisecond),
	)
}
