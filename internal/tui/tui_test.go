package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardtable/blackjack/internal/game"
	"github.com/cardtable/blackjack/internal/randutil"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func testModel(t *testing.T) *Model {
	t.Helper()
	table := game.NewTable(randutil.New(42),
		game.WithBalance(500),
		game.WithLimits(10, 100),
	)
	return New(table, nil)
}

func TestBetFlowStartsRound(t *testing.T) {
	m := testModel(t)

	m.betInput.SetValue("25")
	updated, _ := m.Update(enter())
	m = updated.(*Model)

	require.NotEqual(t, game.StateNoRound, m.table.State())
	assert.Equal(t, 25, m.lastBet)
	view := m.View()
	assert.Contains(t, view, "dealer:")
	assert.Contains(t, view, "balance $")
}

func TestInvalidBetShowsError(t *testing.T) {
	m := testModel(t)

	m.betInput.SetValue("5")
	updated, _ := m.Update(enter())
	m = updated.(*Model)

	assert.Equal(t, modeBetting, m.mode)
	assert.Contains(t, m.View(), "minimum")
}

func TestNonNumericBetShowsError(t *testing.T) {
	m := testModel(t)

	m.betInput.SetValue("lots")
	updated, _ := m.Update(enter())
	m = updated.(*Model)

	assert.Equal(t, modeBetting, m.mode)
	assert.NotEmpty(t, m.errText)
}

func TestStandRunsRoundToCompletion(t *testing.T) {
	m := testModel(t)

	m.betInput.SetValue("10")
	updated, _ := m.Update(enter())
	m = updated.(*Model)

	// Immediate blackjack settles without a player turn.
	if m.mode == modePlaying {
		updated, _ = m.Update(key("s"))
		m = updated.(*Model)
	}
	assert.Equal(t, modeRoundOver, m.mode)
	assert.Equal(t, game.StateSettled, m.table.State())

	// Enter returns to betting for the next round.
	updated, _ = m.Update(enter())
	m = updated.(*Model)
	assert.Equal(t, modeBetting, m.mode)
}

func TestHoleCardHiddenDuringPlay(t *testing.T) {
	m := testModel(t)

	m.betInput.SetValue("10")
	updated, _ := m.Update(enter())
	m = updated.(*Model)

	if m.mode == modePlaying {
		assert.True(t, strings.Contains(m.View(), "??"), "hole card should be masked during play")
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel(t)
	updated, cmd := m.Update(key("q"))
	m = updated.(*Model)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "cashed out")
}
