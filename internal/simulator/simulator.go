// Package simulator auto-plays blackjack rounds with the strategy
// advisor driving every decision, to measure results over many rounds.
package simulator

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/cardtable/blackjack/internal/game"
	"github.com/cardtable/blackjack/internal/randutil"
	"github.com/cardtable/blackjack/internal/shoe"
	"github.com/cardtable/blackjack/internal/statistics"
	"github.com/cardtable/blackjack/internal/strategy"
)

// Config holds configuration for one simulated session.
type Config struct {
	Rounds      int
	Decks       int
	Penetration float64
	Bet         int
	MinBet      int
	MaxBet      int
	Bankroll    int
	Seed        int64
	Spread      bool // scale bets with the true count instead of flat betting
}

// Simulator runs one session of advisor-driven play.
type Simulator struct {
	cfg    Config
	logger *log.Logger
}

// New creates a simulator with the given configuration.
func New(cfg Config, logger *log.Logger) *Simulator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{cfg: cfg, logger: logger}
}

// Run plays the configured number of rounds and returns the session
// statistics. The session ends early if the bankroll can no longer
// cover the table minimum.
func (s *Simulator) Run() (*statistics.Session, error) {
	rng := randutil.New(s.cfg.Seed)
	sh := shoe.New(rng, s.cfg.Decks, s.cfg.Penetration)
	table := game.NewTable(nil,
		game.WithShoe(sh),
		game.WithBalance(s.cfg.Bankroll),
		game.WithLimits(s.cfg.MinBet, s.cfg.MaxBet),
		game.WithLogger(s.logger),
	)
	session := statistics.NewSession(nil)

	for round := 0; round < s.cfg.Rounds; round++ {
		bet := s.betSize(sh.TrueCount())
		if bet > table.Balance() {
			s.logger.Debug("bankroll exhausted", "round", round, "balance", table.Balance())
			break
		}

		before := table.Balance()
		if err := table.StartRound(bet); err != nil {
			return session, fmt.Errorf("round %d: %w", round, err)
		}

		if table.State() == game.StatePlayerTurn {
			if err := s.playHands(table); err != nil {
				return session, fmt.Errorf("round %d: %w", round, err)
			}
			if err := table.PlayDealer(); err != nil {
				return session, fmt.Errorf("round %d: %w", round, err)
			}
			if _, err := table.SettleBets(); err != nil {
				return session, fmt.Errorf("round %d: %w", round, err)
			}
		}

		session.Record(roundResult(table, before, bet))
	}

	return session, nil
}

// playHands drives the advisor through every player hand. When a
// recommended double or split is unavailable the hand falls back to
// the chart's total play.
func (s *Simulator) playHands(table *game.Table) error {
	// A 4-hand round can take a few dozen actions at most; anything
	// beyond that is a driver bug, not a long round.
	for guard := 0; !table.AllHandsFinished(); guard++ {
		if guard > 64 {
			return fmt.Errorf("advisor loop did not terminate")
		}

		hand := table.Round().CurrentHand()
		upcard := table.Round().Dealer[0]
		trueCount := table.Shoe().TrueCount()

		action := strategy.Recommend(hand.Cards, upcard, trueCount)
		if action == strategy.Split {
			if err := table.Split(); err == nil {
				continue
			}
			action = strategy.RecommendTotal(hand.Cards, upcard, trueCount)
		}

		var err error
		switch action {
		case strategy.Hit:
			err = table.Hit()
		case strategy.Stand:
			err = table.Stand()
		case strategy.Double:
			if err = table.Double(); err != nil {
				err = table.Hit()
			}
		case strategy.DoubleOrStand:
			if err = table.Double(); err != nil {
				err = table.Stand()
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// betSize returns the wager for the next round. With spreading on,
// the bet grows one unit per true-count point above one, capped at
// the table maximum.
func (s *Simulator) betSize(trueCount float64) int {
	if !s.cfg.Spread {
		return s.cfg.Bet
	}

	units := int(trueCount) - 1
	if units < 1 {
		return s.cfg.Bet
	}
	bet := s.cfg.Bet * (units + 1)
	if bet > s.cfg.MaxBet {
		bet = s.cfg.MaxBet
	}
	return bet
}

func roundResult(table *game.Table, balanceBefore, bet int) statistics.RoundResult {
	net := table.Balance() - balanceBefore

	blackjack := false
	busted := true
	for _, h := range table.Round().Hands {
		if h.Status == game.HandBlackjack {
			blackjack = true
		}
		if !h.Busted() {
			busted = false
		}
	}

	return statistics.RoundResult{
		NetUnits:  float64(net) / float64(bet),
		Blackjack: blackjack,
		Busted:    busted,
	}
}
