package rules

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// TableSettings is the session-level configuration: shoe shape, bet
// limits and starting bankroll.
type TableSettings struct {
	Decks       int     `hcl:"decks,optional"`
	Penetration float64 `hcl:"penetration,optional"`
	MinBet      int     `hcl:"min_bet,optional"`
	MaxBet      int     `hcl:"max_bet,optional"`
	Bankroll    int     `hcl:"bankroll,optional"`
}

// Config is the full table configuration loaded from an HCL file.
type Config struct {
	Table TableSettings
	Rules Rules
}

// ruleSettings mirrors Rules for HCL decoding. Fields are pointers so
// an omitted setting keeps its default instead of decoding to the zero
// value; the double restriction travels as its config-file spelling.
type ruleSettings struct {
	DealerHitsSoft17  *bool   `hcl:"dealer_hits_soft_17,optional"`
	DoubleAfterSplit  *bool   `hcl:"double_after_split,optional"`
	DoubleRestriction *string `hcl:"double_restriction,optional"`
	ResplitAces       *bool   `hcl:"resplit_aces,optional"`
	LateSurrender     *bool   `hcl:"late_surrender,optional"`
}

type configHCL struct {
	Table *TableSettings `hcl:"table,block"`
	Rules *ruleSettings  `hcl:"rules,block"`
}

// DefaultConfig returns the configuration used when no file exists:
// a six-deck H17 game dealt to 80% with $10/$500 limits.
func DefaultConfig() *Config {
	return &Config{
		Table: TableSettings{
			Decks:       6,
			Penetration: 0.8,
			MinBet:      10,
			MaxBet:      500,
			Bankroll:    1000,
		},
		Rules: Default(),
	}
}

// LoadConfig loads table configuration from an HCL file, falling back
// to defaults when the file does not exist. Missing fields take their
// default values.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw configHCL
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := DefaultConfig()
	if raw.Table != nil {
		if raw.Table.Decks > 0 {
			config.Table.Decks = raw.Table.Decks
		}
		if raw.Table.Penetration > 0 {
			config.Table.Penetration = raw.Table.Penetration
		}
		if raw.Table.MinBet > 0 {
			config.Table.MinBet = raw.Table.MinBet
		}
		if raw.Table.MaxBet > 0 {
			config.Table.MaxBet = raw.Table.MaxBet
		}
		if raw.Table.Bankroll > 0 {
			config.Table.Bankroll = raw.Table.Bankroll
		}
	}
	if raw.Rules != nil {
		if raw.Rules.DealerHitsSoft17 != nil {
			config.Rules.DealerHitsSoft17 = *raw.Rules.DealerHitsSoft17
		}
		if raw.Rules.DoubleAfterSplit != nil {
			config.Rules.DoubleAfterSplit = *raw.Rules.DoubleAfterSplit
		}
		if raw.Rules.DoubleRestriction != nil {
			restriction, err := ParseDoubleRestriction(*raw.Rules.DoubleRestriction)
			if err != nil {
				return nil, err
			}
			config.Rules.DoubleRestriction = restriction
		}
		if raw.Rules.ResplitAces != nil {
			config.Rules.ResplitAces = *raw.Rules.ResplitAces
		}
		if raw.Rules.LateSurrender != nil {
			config.Rules.LateSurrender = *raw.Rules.LateSurrender
		}
	}

	if config.Table.MinBet > config.Table.MaxBet {
		return nil, fmt.Errorf("min_bet %d exceeds max_bet %d", config.Table.MinBet, config.Table.MaxBet)
	}
	return config, nil
}
