package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/cardtable/blackjack/internal/simulator"
	"github.com/cardtable/blackjack/internal/statistics"
)

// SimulateCmd fans independent advisor-driven sessions out across
// goroutines and aggregates their statistics.
type SimulateCmd struct {
	Sessions    int     `default:"4" help:"Number of parallel sessions"`
	Rounds      int     `default:"10000" help:"Rounds per session"`
	Decks       int     `default:"6" help:"Decks in the shoe"`
	Penetration float64 `default:"0.8" help:"Shoe penetration before reshuffle"`
	Bet         int     `default:"10" help:"Base bet per round"`
	MaxBet      int     `default:"500" help:"Table maximum"`
	Bankroll    int     `default:"100000" help:"Starting bankroll per session"`
	Seed        int64   `default:"1" env:"BLACKJACK_SEED" help:"Base seed; session i uses seed+i"`
	Spread      bool    `help:"Scale bets with the true count"`
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	sessions := make([]*statistics.Session, c.Sessions)

	var g errgroup.Group
	for i := 0; i < c.Sessions; i++ {
		g.Go(func() error {
			sim := simulator.New(simulator.Config{
				Rounds:      c.Rounds,
				Decks:       c.Decks,
				Penetration: c.Penetration,
				Bet:         c.Bet,
				MinBet:      c.Bet,
				MaxBet:      c.MaxBet,
				Bankroll:    c.Bankroll,
				Seed:        c.Seed + int64(i),
				Spread:      c.Spread,
			}, logger)

			session, err := sim.Run()
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			sessions[i] = session
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := statistics.NewSession(nil)
	for i, session := range sessions {
		fmt.Printf("session %d [%s]: %s\n", i, session.ID[:8], session.Report())
		total.Merge(session)
	}
	fmt.Printf("\noverall: %s\n", total.Report())
	if total.Rounds > 0 {
		fmt.Printf("edge: %+.3f%% per round\n", total.Mean()*100)
	}
	return nil
}
