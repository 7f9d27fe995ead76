package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains the lipgloss styling for the table view.
type Styles struct {
	Title       lipgloss.Style
	RedCard     lipgloss.Style
	BlackCard   lipgloss.Style
	HiddenCard  lipgloss.Style
	CurrentHand lipgloss.Style
	Message     lipgloss.Style
	Hint        lipgloss.Style
	Count       lipgloss.Style
	Balance     lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyles builds the standard color scheme. Monochrome
// terminals fall back to plain text.
func DefaultStyles() *Styles {
	if termenv.ColorProfile() == termenv.Ascii {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title: plain, RedCard: plain, BlackCard: plain, HiddenCard: plain,
			CurrentHand: plain, Message: plain, Hint: plain, Count: plain,
			Balance: plain, Help: plain, Error: plain,
		}
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#0B6623")).
			Padding(0, 1).
			Bold(true),
		RedCard:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		BlackCard:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		HiddenCard:  lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		CurrentHand: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Message:     lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
		Hint:        lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")).Italic(true),
		Count:       lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Balance:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
}
