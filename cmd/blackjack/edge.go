package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/cardtable/blackjack/internal/rules"
)

// EdgeCmd reports the expected house edge for a rule configuration.
type EdgeCmd struct {
	Config string `short:"c" default:"table.hcl" env:"BLACKJACK_CONFIG" help:"Table configuration file"`
}

func (c *EdgeCmd) Run(logger *log.Logger) error {
	config, err := rules.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	edge, err := rules.EstimateEdge(config.Rules, config.Table.Decks)
	if err != nil {
		return err
	}

	fmt.Printf("decks:               %d\n", config.Table.Decks)
	fmt.Printf("dealer hits soft 17: %v\n", config.Rules.DealerHitsSoft17)
	fmt.Printf("double after split:  %v\n", config.Rules.DoubleAfterSplit)
	fmt.Printf("double restriction:  %s\n", config.Rules.DoubleRestriction)
	fmt.Printf("resplit aces:        %v\n", config.Rules.ResplitAces)
	fmt.Printf("late surrender:      %v\n", config.Rules.LateSurrender)
	fmt.Printf("\nhouse edge: %.3f%% (lower is better)\n", edge)
	return nil
}

// RorCmd reports the gambler's-ruin probability for a bankroll.
type RorCmd struct {
	Bankroll int     `default:"10000" help:"Bankroll in dollars"`
	Unit     int     `default:"25" help:"Betting unit in dollars"`
	Edge     float64 `default:"0.004" help:"Player edge per unit wagered"`
	StdDev   float64 `default:"1.15" help:"Standard deviation per round in units"`
}

func (c *RorCmd) Run(logger *log.Logger) error {
	if c.Unit <= 0 {
		return fmt.Errorf("unit must be positive, got %d", c.Unit)
	}

	units := float64(c.Bankroll / c.Unit)
	ror := rules.RiskOfRuin(units, c.Edge, c.StdDev)

	fmt.Printf("bankroll: $%d, unit: $%d, units: %.0f\n", c.Bankroll, c.Unit, units)
	fmt.Printf("risk of ruin: %.2f%%\n", ror*100)
	return nil
}
