package game

import "github.com/cardtable/blackjack/internal/deck"

// HandView is the read-only projection of one hand for presentation.
// Cards are two-character codes ("AS", "TH").
type HandView struct {
	Cards     []string
	Value     int
	Soft      bool
	Bet       int
	Status    HandStatus
	Finished  bool
	Busted    bool
	Blackjack bool
}

// Snapshot is the full read-only view of the table a presentation
// layer renders from. It carries no references into engine state.
type Snapshot struct {
	State       RoundState
	Balance     int
	MinBet      int
	MaxBet      int
	Message     string
	Dealer      HandView
	HoleHidden  bool
	Hands       []HandView
	CurrentHand int

	CardsLeft    int
	RunningCount int
	TrueCount    float64
}

// Snapshot captures the current table state. While the round is still
// being played the dealer's second card is masked as "??" and only the
// upcard contributes to the dealer's visible value; hole-card
// visibility is a viewing rule, not engine state.
func (t *Table) Snapshot() Snapshot {
	snap := Snapshot{
		State:        t.State(),
		Balance:      t.balance,
		MinBet:       t.minBet,
		MaxBet:       t.maxBet,
		Message:      t.message,
		CardsLeft:    t.shoe.CardsLeft(),
		RunningCount: t.shoe.RunningCount(),
		TrueCount:    t.shoe.TrueCount(),
	}

	if t.round == nil {
		return snap
	}

	r := t.round
	snap.CurrentHand = r.Current
	snap.HoleHidden = r.State == StatePlayerTurn

	if snap.HoleHidden && len(r.Dealer) >= 2 {
		up := r.Dealer[0]
		total, soft := HandValue([]deck.Card{up})
		snap.Dealer = HandView{
			Cards: []string{up.Code(), "??"},
			Value: total,
			Soft:  soft,
		}
	} else {
		snap.Dealer = viewCards(r.Dealer)
	}

	snap.Hands = make([]HandView, len(r.Hands))
	for i, h := range r.Hands {
		view := viewCards(h.Cards)
		view.Bet = h.Bet
		view.Status = h.Status
		view.Finished = h.Finished()
		view.Busted = h.Busted()
		view.Blackjack = h.Status == HandBlackjack
		snap.Hands[i] = view
	}
	return snap
}

func viewCards(cards []deck.Card) HandView {
	total, soft := HandValue(cards)
	return HandView{
		Cards: deck.Codes(cards),
		Value: total,
		Soft:  soft,
	}
}
