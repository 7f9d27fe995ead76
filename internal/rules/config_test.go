package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 6, config.Table.Decks)
	assert.Equal(t, 0.8, config.Table.Penetration)
	assert.Equal(t, 10, config.Table.MinBet)
	assert.Equal(t, 500, config.Table.MaxBet)
	assert.True(t, config.Rules.DealerHitsSoft17)
}

func TestLoadConfigFull(t *testing.T) {
	path := writeConfig(t, `
table {
  decks       = 2
  penetration = 0.75
  min_bet     = 25
  max_bet     = 1000
  bankroll    = 5000
}

rules {
  dealer_hits_soft_17 = true
  double_after_split  = true
  double_restriction  = "9-11"
  resplit_aces        = true
  late_surrender      = true
}
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2, config.Table.Decks)
	assert.Equal(t, 0.75, config.Table.Penetration)
	assert.Equal(t, 25, config.Table.MinBet)
	assert.Equal(t, 1000, config.Table.MaxBet)
	assert.Equal(t, 5000, config.Table.Bankroll)
	assert.True(t, config.Rules.DoubleAfterSplit)
	assert.Equal(t, DoubleNineToEleven, config.Rules.DoubleRestriction)
	assert.True(t, config.Rules.ResplitAces)
	assert.True(t, config.Rules.LateSurrender)
}

func TestLoadConfigPartialTableBlock(t *testing.T) {
	path := writeConfig(t, `
table {
  decks = 8
}
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8, config.Table.Decks)
	assert.Equal(t, 0.8, config.Table.Penetration, "unset fields keep defaults")
	assert.Equal(t, 10, config.Table.MinBet)
}

func TestLoadConfigPartialRulesBlock(t *testing.T) {
	path := writeConfig(t, `
rules {
  late_surrender = true
}
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, config.Rules.LateSurrender)
	assert.True(t, config.Rules.DealerHitsSoft17, "unset rules keep defaults")
	assert.Equal(t, DoubleAny, config.Rules.DoubleRestriction)
	assert.False(t, config.Rules.DoubleAfterSplit)
}

func TestLoadConfigInvalidRestriction(t *testing.T) {
	path := writeConfig(t, `
rules {
  double_restriction = "11-only"
}
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigInvertedLimits(t *testing.T) {
	path := writeConfig(t, `
table {
  min_bet = 100
  max_bet = 50
}
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigBadSyntax(t *testing.T) {
	path := writeConfig(t, `table { decks = `)

	_, err := LoadConfig(path)
	require.Error(t, err)
}
