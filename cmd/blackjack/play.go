package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/cardtable/blackjack/internal/game"
	"github.com/cardtable/blackjack/internal/randutil"
	"github.com/cardtable/blackjack/internal/rules"
	"github.com/cardtable/blackjack/internal/shoe"
	"github.com/cardtable/blackjack/internal/tui"
)

// PlayCmd runs an interactive table session in the terminal.
type PlayCmd struct {
	Config string `short:"c" default:"table.hcl" env:"BLACKJACK_CONFIG" help:"Table configuration file"`
	Seed   int64  `env:"BLACKJACK_SEED" help:"Shuffle seed for a reproducible session (0 = random)"`
}

func (c *PlayCmd) Run(logger *log.Logger) error {
	config, err := rules.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	rng := randutil.NewFromTime()
	if c.Seed != 0 {
		rng = randutil.New(c.Seed)
	}

	if edge, err := rules.EstimateEdge(config.Rules, config.Table.Decks); err == nil {
		logger.Info("table rules loaded", "decks", config.Table.Decks, "house_edge", fmt.Sprintf("%.3f%%", edge))
	}

	table := game.NewTable(nil,
		game.WithShoe(shoe.New(rng, config.Table.Decks, config.Table.Penetration)),
		game.WithBalance(config.Table.Bankroll),
		game.WithLimits(config.Table.MinBet, config.Table.MaxBet),
		game.WithLogger(logger),
	)

	program := tea.NewProgram(tui.New(table, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running table view: %w", err)
	}
	return nil
}
