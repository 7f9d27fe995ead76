// Package tui renders an interactive blackjack table with Bubble Tea.
// It is a pure presentation layer: everything it shows comes from the
// engine's snapshot, and every keypress maps to one engine operation.
package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/cardtable/blackjack/internal/deck"
	"github.com/cardtable/blackjack/internal/game"
	"github.com/cardtable/blackjack/internal/strategy"
)

type mode int

const (
	modeBetting mode = iota
	modePlaying
	modeRoundOver
)

// Model is the Bubble Tea model for one table session.
type Model struct {
	table  *game.Table
	styles *Styles
	logger *log.Logger

	betInput textinput.Model
	mode     mode
	lastBet  int
	errText  string
	quitting bool
	width    int
}

// New creates a table view over an engine session. A nil logger
// discards engine events.
func New(table *game.Table, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	input := textinput.New()
	input.Placeholder = fmt.Sprintf("bet amount (%d-%d), or 'sit'", table.MinBet(), table.MaxBet())
	input.Focus()
	input.CharLimit = 10
	input.Width = 30

	return &Model{
		table:    table,
		styles:   DefaultStyles(),
		logger:   logger,
		betInput: input,
		lastBet:  table.MinBet(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeBetting:
			return m.updateBetting(msg)
		case modePlaying:
			return m.updatePlaying(msg)
		default:
			return m.updateRoundOver(msg)
		}
	}

	var cmd tea.Cmd
	m.betInput, cmd = m.betInput.Update(msg)
	return m, cmd
}

func (m *Model) updateBetting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.errText = ""
		text := strings.TrimSpace(m.betInput.Value())
		m.betInput.SetValue("")

		if text == "sit" {
			if err := m.table.SitOut(); err != nil {
				m.errText = err.Error()
				return m, nil
			}
			m.mode = modeRoundOver
			return m, nil
		}

		bet := m.lastBet
		if text != "" {
			parsed, err := strconv.Atoi(text)
			if err != nil {
				m.errText = fmt.Sprintf("%q is not a bet amount", text)
				return m, nil
			}
			bet = parsed
		}

		if err := m.table.StartRound(bet); err != nil {
			m.errText = m.table.Message()
			return m, nil
		}
		m.lastBet = bet
		if m.table.State() == game.StateSettled {
			m.mode = modeRoundOver // immediate blackjack
		} else {
			m.mode = modePlaying
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.betInput, cmd = m.betInput.Update(msg)
	return m, cmd
}

func (m *Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errText = ""

	var err error
	switch msg.String() {
	case "h":
		err = m.table.Hit()
	case "s":
		err = m.table.Stand()
	case "d":
		err = m.table.Double()
	case "p":
		err = m.table.Split()
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	default:
		return m, nil
	}
	if err != nil {
		m.errText = m.table.Message()
		m.logger.Debug("action rejected", "key", msg.String(), "err", err)
		return m, nil
	}

	if m.table.AllHandsFinished() {
		if err := m.table.PlayDealer(); err == nil {
			m.table.SettleBets()
		}
		m.mode = modeRoundOver
	}
	return m, nil
}

func (m *Model) updateRoundOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter", "n":
		m.mode = modeBetting
		m.errText = ""
		return m, textinput.Blink
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return fmt.Sprintf("cashed out with $%d\n", m.table.Balance())
	}

	snap := m.table.Snapshot()
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	b.WriteString("\n\n")

	b.WriteString("dealer: ")
	b.WriteString(m.renderCards(snap.Dealer.Cards))
	if !snap.HoleHidden && len(snap.Dealer.Cards) > 0 {
		b.WriteString(fmt.Sprintf("  (%s)", totalLabel(snap.Dealer)))
	}
	b.WriteString("\n\n")

	for i, hand := range snap.Hands {
		marker := "  "
		if m.mode == modePlaying && i == snap.CurrentHand {
			marker = m.styles.CurrentHand.Render("> ")
		}
		line := fmt.Sprintf("%s%s  (%s) bet $%d %s",
			marker, m.renderCards(hand.Cards), totalLabel(hand), hand.Bet, hand.Status)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Count.Render(fmt.Sprintf(
		"shoe: %d cards  running %+d  true %+.1f",
		snap.CardsLeft, snap.RunningCount, snap.TrueCount)))
	b.WriteString("\n")
	b.WriteString(m.styles.Balance.Render(fmt.Sprintf("balance $%d", snap.Balance)))
	b.WriteString("\n\n")

	if m.mode == modePlaying {
		if hint := m.advisorHint(); hint != "" {
			b.WriteString(m.styles.Hint.Render("advisor: " + hint))
			b.WriteString("\n")
		}
	}
	if snap.Message != "" {
		b.WriteString(m.styles.Message.Render(snap.Message))
		b.WriteString("\n")
	}
	if m.errText != "" {
		b.WriteString(m.styles.Error.Render(m.errText))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.mode {
	case modeBetting:
		b.WriteString(m.betInput.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("enter to deal • q to quit"))
	case modePlaying:
		b.WriteString(m.styles.Help.Render("h hit • s stand • d double • p split • q quit"))
	default:
		b.WriteString(m.styles.Help.Render("enter for next round • q to quit"))
	}
	b.WriteString("\n")

	return b.String()
}

// advisorHint recommends a play for the current hand at the live count.
func (m *Model) advisorHint() string {
	round := m.table.Round()
	if round == nil {
		return ""
	}
	hand := round.CurrentHand()
	if hand == nil || len(round.Dealer) == 0 {
		return ""
	}
	action := strategy.Recommend(hand.Cards, round.Dealer[0], m.table.Shoe().TrueCount())
	return action.String()
}

func (m *Model) renderCards(codes []string) string {
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		if code == "??" {
			parts = append(parts, m.styles.HiddenCard.Render("[??]"))
			continue
		}
		card, err := deck.ParseCard(code)
		if err != nil {
			parts = append(parts, code)
			continue
		}
		style := m.styles.BlackCard
		if card.IsRed() {
			style = m.styles.RedCard
		}
		parts = append(parts, style.Render("["+card.String()+"]"))
	}
	return strings.Join(parts, " ")
}

func totalLabel(hand game.HandView) string {
	if hand.Soft {
		return fmt.Sprintf("soft %d", hand.Value)
	}
	return strconv.Itoa(hand.Value)
}
