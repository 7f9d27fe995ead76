package game

import "testing"

func TestHandValue(t *testing.T) {
	tests := []struct {
		codes []string
		total int
		soft  bool
	}{
		{[]string{"2H", "3D"}, 5, false},
		{[]string{"AS", "KD"}, 21, true},
		{[]string{"AS", "6D"}, 17, true},
		{[]string{"AS", "6D", "9C"}, 16, false},
		{[]string{"AS", "AD"}, 12, true},
		{[]string{"AS", "AD", "AC", "AH"}, 14, true},
		{[]string{"AS", "AD", "9C"}, 21, true},
		{[]string{"TS", "9D", "5C"}, 24, false},
		{[]string{"AS", "TD", "TC"}, 21, false},
		{[]string{"KH", "QD"}, 20, false},
	}

	for _, tt := range tests {
		total, soft := HandValue(cards(t, tt.codes...))
		if total != tt.total || soft != tt.soft {
			t.Errorf("HandValue(%v) = (%d, %v), want (%d, %v)",
				tt.codes, total, soft, tt.total, tt.soft)
		}
	}
}

func TestHandValueMaximality(t *testing.T) {
	// The evaluator must report the highest non-busting total: an Ace
	// is never left as 1 when promoting it to 11 would still fit.
	total, soft := HandValue(cards(t, "AS", "8D"))
	if total != 19 || !soft {
		t.Errorf("A+8 should be soft 19, got %d soft=%v", total, soft)
	}

	// ...and never promoted when promotion would bust.
	total, soft = HandValue(cards(t, "AS", "8D", "9C"))
	if total != 18 || soft {
		t.Errorf("A+8+9 should be hard 18, got %d soft=%v", total, soft)
	}
}

func TestIsBust(t *testing.T) {
	if IsBust(cards(t, "TS", "9D", "2C")) {
		t.Error("21 is not a bust")
	}
	if !IsBust(cards(t, "TS", "9D", "3C")) {
		t.Error("22 is a bust")
	}
	if IsBust(cards(t, "AS", "AD", "9C", "KD")) {
		t.Error("A+A+9+K is 21 with aces low, not a bust")
	}
}

func TestIsBlackjack(t *testing.T) {
	if !IsBlackjack(cards(t, "AS", "KD")) {
		t.Error("A+K is a blackjack")
	}
	if IsBlackjack(cards(t, "TS", "9D", "2C")) {
		t.Error("three-card 21 is not a blackjack")
	}
	if IsBlackjack(cards(t, "TS", "9D")) {
		t.Error("19 is not a blackjack")
	}
}

func TestIsPair(t *testing.T) {
	if !IsPair(cards(t, "8S", "8D")) {
		t.Error("8+8 is a pair")
	}
	// Pairing is by value, not rank identity.
	if !IsPair(cards(t, "KS", "QD")) {
		t.Error("K+Q is a value pair")
	}
	if IsPair(cards(t, "8S", "9D")) {
		t.Error("8+9 is not a pair")
	}
	if IsPair(cards(t, "8S", "8D", "8C")) {
		t.Error("three cards are never a pair")
	}
}

func TestHandStatusTransitions(t *testing.T) {
	h := newHand(10, cards(t, "8S", "8D")...)
	if h.Finished() || h.Busted() {
		t.Error("fresh hand should be playing")
	}
	if !h.CanDouble() || !h.CanSplit() {
		t.Error("two-card pair should allow double and split")
	}

	h.Status = HandStood
	if !h.Finished() || h.CanDouble() || h.CanSplit() {
		t.Error("stood hand allows no further action")
	}

	h.Status = HandBusted
	if !h.Busted() {
		t.Error("busted status should report busted")
	}
}
