package game

import (
	"fmt"

	"github.com/cardtable/blackjack/internal/deck"
)

// RoundState tags where a round is in its lifecycle.
type RoundState int

const (
	StateNoRound RoundState = iota
	StatePlayerTurn
	StateDealerTurn
	StateSettled
)

// String returns a short label for the state
func (s RoundState) String() string {
	switch s {
	case StateNoRound:
		return "no-round"
	case StatePlayerTurn:
		return "player-turn"
	case StateDealerTurn:
		return "dealer-turn"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// MaxHands is the split cap: a round never holds more than four hands.
const MaxHands = 4

// HandResult is the settlement outcome for one player hand. Payout is
// the amount credited back to the balance (0 for a loss, 1x the bet
// for a push, 2x for a win, 2.5x for a blackjack).
type HandResult struct {
	Payout int
	Busted bool
}

// Round is the transient state of one betting round. It is created at
// bet placement and conceptually discarded at settlement; only the
// shoe and the balance outlive it.
type Round struct {
	Dealer  []deck.Card
	Hands   []*Hand
	Current int
	State   RoundState
	Results []HandResult
}

// CurrentHand returns the hand at the current index, or nil when the
// index has moved past the last hand.
func (r *Round) CurrentHand() *Hand {
	if r.Current < 0 || r.Current >= len(r.Hands) {
		return nil
	}
	return r.Hands[r.Current]
}

// StartRound validates and places a bet, debits the balance, deals two
// cards to the player and two to the dealer, and checks for an
// immediate blackjack. Bets must be even amounts so the 3:2 natural
// payout stays exact in whole dollars. A player blackjack settles the
// round on the spot: 2.5x the bet comes back, or 1x when the dealer
// also has a natural; the dealer's hole card is never played out
// further.
func (t *Table) StartRound(bet int) error {
	if t.inProgress() {
		t.message = "round already in progress"
		return fmt.Errorf("%w: round already in progress", ErrIllegalAction)
	}

	switch {
	case bet < t.minBet:
		t.message = fmt.Sprintf("bet $%d is below the $%d table minimum", bet, t.minBet)
		return fmt.Errorf("%w: bet %d below table minimum %d", ErrInvalidBet, bet, t.minBet)
	case bet > t.maxBet:
		t.message = fmt.Sprintf("bet $%d is above the $%d table maximum", bet, t.maxBet)
		return fmt.Errorf("%w: bet %d above table maximum %d", ErrInvalidBet, bet, t.maxBet)
	case bet > t.balance:
		t.message = fmt.Sprintf("bet $%d exceeds balance $%d", bet, t.balance)
		return fmt.Errorf("%w: bet %d exceeds balance %d", ErrInvalidBet, bet, t.balance)
	case bet%2 != 0:
		t.message = fmt.Sprintf("bet $%d must be even so blackjack pays 3:2 exactly", bet)
		return fmt.Errorf("%w: bet %d is not an even amount", ErrInvalidBet, bet)
	}

	t.balance -= bet
	t.round = t.dealRound(bet)
	t.logger.Debug("round dealt",
		"bet", bet,
		"player", deck.Codes(t.round.Hands[0].Cards),
		"upcard", t.round.Dealer[0].Code())

	hand := t.round.Hands[0]
	if IsBlackjack(hand.Cards) {
		hand.Status = HandBlackjack
		payout := hand.Bet * 5 / 2
		if IsBlackjack(t.round.Dealer) {
			payout = hand.Bet
			t.message = "both have blackjack, push"
		} else {
			t.message = fmt.Sprintf("blackjack! paid 3:2, you win $%d", payout-hand.Bet)
		}
		t.balance += payout
		t.round.Results = []HandResult{{Payout: payout}}
		t.round.State = StateSettled
		return nil
	}

	t.message = fmt.Sprintf("bet $%d placed", bet)
	t.round.State = StatePlayerTurn
	return nil
}

// SitOut deals a zero-bet round that settles immediately as a no-op.
// Cards still leave the shoe, so the count keeps moving and the player
// can watch the table or practise counting without wagering.
func (t *Table) SitOut() error {
	if t.inProgress() {
		t.message = "round already in progress"
		return fmt.Errorf("%w: round already in progress", ErrIllegalAction)
	}

	t.round = t.dealRound(0)
	t.round.Hands[0].Status = HandStood
	t.round.Results = []HandResult{{Payout: 0}}
	t.round.State = StateSettled
	t.message = "sitting out this round"
	return nil
}

func (t *Table) dealRound(bet int) *Round {
	hand := newHand(bet, t.shoe.Deal(), t.shoe.Deal())
	r := &Round{
		Hands:  []*Hand{hand},
		Dealer: []deck.Card{t.shoe.Deal(), t.shoe.Deal()},
	}
	return r
}

// Hit deals one card to the current hand. Busting finishes the hand
// and marks it busted; reaching exactly 21 finishes it as stood.
func (t *Table) Hit() error {
	hand, err := t.actionableHand()
	if err != nil {
		return err
	}

	card := t.shoe.Deal()
	hand.addCard(card)
	total := hand.Value()
	switch {
	case total > 21:
		hand.Status = HandBusted
		t.message = fmt.Sprintf("drew %s, busted with %d", card.Code(), total)
	case total == 21:
		hand.Status = HandStood
		t.message = fmt.Sprintf("drew %s, %d", card.Code(), total)
	default:
		t.message = fmt.Sprintf("drew %s, %d", card.Code(), total)
	}
	t.logger.Debug("hit", "card", card.Code(), "total", total)

	if hand.Finished() {
		t.advance()
	}
	return nil
}

// Stand finishes the current hand without drawing.
func (t *Table) Stand() error {
	hand, err := t.actionableHand()
	if err != nil {
		return err
	}

	hand.Status = HandStood
	t.message = fmt.Sprintf("standing on %d", hand.Value())
	t.advance()
	return nil
}

// Double debits one more bet unit, doubles the stored bet, deals
// exactly one card and finishes the hand, bust or not. Only permitted
// on a two-card hand with balance to cover it.
func (t *Table) Double() error {
	hand, err := t.actionableHand()
	if err != nil {
		return err
	}

	if !hand.CanDouble() {
		t.message = "can only double on the first two cards"
		return fmt.Errorf("%w: double requires exactly two cards", ErrIllegalAction)
	}
	if hand.Bet > t.balance {
		t.message = fmt.Sprintf("doubling needs another $%d, balance is $%d", hand.Bet, t.balance)
		return fmt.Errorf("%w: balance %d cannot cover doubling bet %d", ErrIllegalAction, t.balance, hand.Bet)
	}

	t.balance -= hand.Bet
	hand.Bet *= 2

	card := t.shoe.Deal()
	hand.addCard(card)
	total := hand.Value()
	if total > 21 {
		hand.Status = HandBusted
		t.message = fmt.Sprintf("doubled, drew %s, busted with %d", card.Code(), total)
	} else {
		hand.Status = HandDoubled
		t.message = fmt.Sprintf("doubled, drew %s, %d", card.Code(), total)
	}
	t.logger.Debug("double", "card", card.Code(), "total", total, "bet", hand.Bet)

	t.advance()
	return nil
}

// Split replaces the current two-card pair with two new hands, one
// original card plus one fresh card each, inserted adjacently so the
// left hand keeps the current index. Debits one more bet unit. Capped
// at four hands per round; eligibility is by card value, so a King
// and a Queen split.
func (t *Table) Split() error {
	hand, err := t.actionableHand()
	if err != nil {
		return err
	}

	if !hand.CanSplit() {
		t.message = "can only split two cards of equal value"
		return fmt.Errorf("%w: split requires a two-card pair", ErrIllegalAction)
	}
	if len(t.round.Hands) >= MaxHands {
		t.message = fmt.Sprintf("cannot split beyond %d hands", MaxHands)
		return fmt.Errorf("%w: split cap of %d hands reached", ErrIllegalAction, MaxHands)
	}
	if hand.Bet > t.balance {
		t.message = fmt.Sprintf("splitting needs another $%d, balance is $%d", hand.Bet, t.balance)
		return fmt.Errorf("%w: balance %d cannot cover splitting bet %d", ErrIllegalAction, t.balance, hand.Bet)
	}

	t.balance -= hand.Bet

	left := newHand(hand.Bet, hand.Cards[0], t.shoe.Deal())
	right := newHand(hand.Bet, hand.Cards[1], t.shoe.Deal())

	r := t.round
	hands := make([]*Hand, 0, len(r.Hands)+1)
	hands = append(hands, r.Hands[:r.Current]...)
	hands = append(hands, left, right)
	hands = append(hands, r.Hands[r.Current+1:]...)
	r.Hands = hands

	t.message = fmt.Sprintf("split into %s and %s",
		deck.Codes(left.Cards), deck.Codes(right.Cards))
	t.logger.Debug("split", "left", deck.Codes(left.Cards), "right", deck.Codes(right.Cards))
	return nil
}

// AdvanceHand moves the current index past finished hands. When no
// actionable hand remains the round proceeds to the dealer's turn.
func (t *Table) AdvanceHand() {
	if t.round == nil || t.round.State != StatePlayerTurn {
		return
	}
	t.advance()
}

func (t *Table) advance() {
	r := t.round
	for r.Current < len(r.Hands) && r.Hands[r.Current].Finished() {
		r.Current++
	}
	if r.Current >= len(r.Hands) {
		r.State = StateDealerTurn
	}
}

// AllHandsFinished reports whether every player hand is done.
func (t *Table) AllHandsFinished() bool {
	if t.round == nil {
		return true
	}
	for _, h := range t.round.Hands {
		if !h.Finished() {
			return false
		}
	}
	return true
}

// PlayDealer runs the fixed dealer rule: draw while the total is under
// 17, or exactly 17 and soft. The dealer hitting soft 17 is not
// configurable here; the rule flag only exists as house-edge input.
func (t *Table) PlayDealer() error {
	if t.round == nil || t.round.State == StateSettled {
		t.message = "no round to play the dealer in"
		return fmt.Errorf("%w: no round in progress", ErrIllegalAction)
	}
	if !t.AllHandsFinished() {
		t.message = "player hands are still live"
		return fmt.Errorf("%w: player hands not finished", ErrIllegalAction)
	}
	t.round.State = StateDealerTurn

	for {
		total, soft := HandValue(t.round.Dealer)
		if total < 17 || (total == 17 && soft) {
			t.round.Dealer = append(t.round.Dealer, t.shoe.Deal())
			continue
		}
		break
	}

	total, _ := HandValue(t.round.Dealer)
	if total > 21 {
		t.message = fmt.Sprintf("dealer busts with %d", total)
	} else {
		t.message = fmt.Sprintf("dealer stands on %d", total)
	}
	t.logger.Debug("dealer played", "cards", deck.Codes(t.round.Dealer), "total", total)
	return nil
}

// SettleBets pays out each player hand in order and credits the
// balance. Calling it on an already settled round (including the
// immediate-blackjack path) returns the stored results without paying
// twice.
func (t *Table) SettleBets() ([]HandResult, error) {
	if t.round == nil {
		return nil, fmt.Errorf("%w: no round to settle", ErrIllegalAction)
	}
	if t.round.State == StateSettled {
		return t.round.Results, nil
	}
	if t.round.State != StateDealerTurn {
		t.message = "round is not ready to settle"
		return nil, fmt.Errorf("%w: dealer has not played", ErrIllegalAction)
	}

	r := t.round
	dealerTotal, _ := HandValue(r.Dealer)
	dealerBlackjack := IsBlackjack(r.Dealer)

	staked, returned := 0, 0
	results := make([]HandResult, 0, len(r.Hands))
	for _, h := range r.Hands {
		payout := settleHand(h, dealerTotal, dealerBlackjack)
		t.balance += payout
		staked += h.Bet
		returned += payout
		results = append(results, HandResult{Payout: payout, Busted: h.Busted()})
	}

	net := returned - staked
	switch {
	case net > 0:
		t.message = fmt.Sprintf("you win $%d", net)
	case net < 0:
		t.message = fmt.Sprintf("you lose $%d", -net)
	default:
		t.message = "push"
	}
	t.logger.Debug("settled", "staked", staked, "returned", returned, "balance", t.balance)

	r.Results = results
	r.State = StateSettled
	return results, nil
}

// settleHand computes the payout for one hand against the dealer,
// in the fixed order: busts lose first, then a dealer bust pays even
// money, then naturals, then total comparison.
func settleHand(h *Hand, dealerTotal int, dealerBlackjack bool) int {
	playerTotal := h.Value()
	playerBlackjack := h.Status == HandBlackjack || IsBlackjack(h.Cards)

	switch {
	case h.Busted():
		return 0
	case dealerTotal > 21:
		return 2 * h.Bet
	case playerBlackjack && !dealerBlackjack:
		return h.Bet * 5 / 2
	case dealerBlackjack && !playerBlackjack:
		return 0
	case playerTotal > dealerTotal:
		return 2 * h.Bet
	case playerTotal == dealerTotal:
		return h.Bet
	default:
		return 0
	}
}

func (t *Table) inProgress() bool {
	return t.round != nil && t.round.State != StateSettled && t.round.State != StateNoRound
}

// actionableHand validates that a player action is currently legal and
// returns the hand it applies to. Every rejection leaves state intact.
func (t *Table) actionableHand() (*Hand, error) {
	if t.round == nil || t.round.State != StatePlayerTurn {
		t.message = "no hand to act on"
		return nil, fmt.Errorf("%w: no player turn in progress", ErrIllegalAction)
	}
	hand := t.round.CurrentHand()
	if hand == nil || hand.Finished() {
		t.message = "hand is already finished"
		return nil, fmt.Errorf("%w: hand already finished", ErrIllegalAction)
	}
	return hand, nil
}
