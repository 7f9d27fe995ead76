package strategy

import (
	"fmt"
	"testing"

	"github.com/cardtable/blackjack/internal/deck"
)

func hand(t *testing.T, codes ...string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(codes...)
	if err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return cards
}

func card(t *testing.T, code string) deck.Card {
	t.Helper()
	return deck.MustParseCard(code)
}

func TestHardTotals(t *testing.T) {
	tests := []struct {
		codes  []string
		upcard string
		want   Action
	}{
		{[]string{"5S", "3D"}, "6H", Hit},    // hard 8 always hits
		{[]string{"5S", "4D"}, "3H", Double}, // 9 doubles vs 3-6
		{[]string{"5S", "4D"}, "2H", Hit},
		{[]string{"6S", "4D"}, "9H", Double}, // 10 doubles vs 2-9
		{[]string{"6S", "4D"}, "TH", Hit},
		{[]string{"6S", "5D"}, "AH", Double}, // 11 doubles into anything (H17)
		{[]string{"8S", "4D"}, "4H", Stand},  // 12 stands vs 4-6
		{[]string{"8S", "4D"}, "3H", Hit},
		{[]string{"9S", "4D"}, "2H", Stand}, // 13-16 stand vs 2-6
		{[]string{"9S", "7D"}, "7H", Hit},
		{[]string{"9S", "8D"}, "AH", Stand}, // 17+ always stands
		{[]string{"KS", "QD"}, "AH", Stand},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_vs_%s", tt.codes, tt.upcard), func(t *testing.T) {
			got := Recommend(hand(t, tt.codes...), card(t, tt.upcard), 0)
			if got != tt.want {
				t.Errorf("Recommend = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSoftTotals(t *testing.T) {
	tests := []struct {
		codes  []string
		upcard string
		want   Action
	}{
		{[]string{"AS", "2D"}, "5H", Double}, // soft 13 doubles vs 5-6
		{[]string{"AS", "2D"}, "4H", Hit},
		{[]string{"AS", "4D"}, "4H", Double}, // soft 15 doubles vs 4-6
		{[]string{"AS", "6D"}, "3H", Double}, // soft 17 doubles vs 3-6
		{[]string{"AS", "6D"}, "7H", Hit},
		{[]string{"AS", "7D"}, "6H", DoubleOrStand}, // soft 18
		{[]string{"AS", "7D"}, "8H", Stand},
		{[]string{"AS", "7D"}, "9H", Hit},
		{[]string{"AS", "8D"}, "6H", DoubleOrStand}, // soft 19 vs 6 (H17)
		{[]string{"AS", "8D"}, "5H", Stand},
		{[]string{"AS", "9D"}, "6H", Stand}, // soft 20 stands
		// A 3+ card soft hand is a total, never a pair.
		{[]string{"AS", "3D", "4C"}, "6H", DoubleOrStand}, // soft 18
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_vs_%s", tt.codes, tt.upcard), func(t *testing.T) {
			got := Recommend(hand(t, tt.codes...), card(t, tt.upcard), 0)
			if got != tt.want {
				t.Errorf("Recommend = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPairs(t *testing.T) {
	tests := []struct {
		codes  []string
		upcard string
		want   Action
	}{
		{[]string{"8S", "8D"}, "2H", Split}, // eights always split
		{[]string{"8S", "8D"}, "TH", Split},
		{[]string{"AS", "AD"}, "TH", Split}, // aces always split
		{[]string{"2S", "2D"}, "7H", Split},
		{[]string{"2S", "2D"}, "8H", Hit},
		{[]string{"4S", "4D"}, "5H", Split},
		{[]string{"4S", "4D"}, "4H", Hit},
		{[]string{"5S", "5D"}, "6H", Double}, // fives play as hard 10
		{[]string{"6S", "6D"}, "6H", Split},
		{[]string{"6S", "6D"}, "7H", Hit},
		{[]string{"7S", "7D"}, "7H", Split},
		{[]string{"7S", "7D"}, "8H", Hit},
		{[]string{"9S", "9D"}, "7H", Stand}, // nines stand vs 7
		{[]string{"9S", "9D"}, "8H", Split},
		{[]string{"TS", "TD"}, "6H", Stand}, // tens never split at neutral count
		{[]string{"KS", "QD"}, "6H", Stand}, // value pair, same chart row
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_vs_%s", tt.codes, tt.upcard), func(t *testing.T) {
			got := Recommend(hand(t, tt.codes...), card(t, tt.upcard), 0)
			if got != tt.want {
				t.Errorf("Recommend = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDeviations(t *testing.T) {
	tests := []struct {
		name      string
		codes     []string
		upcard    string
		trueCount float64
		want      Action
	}{
		{"16v9 stands at TC 5+", []string{"TS", "6D"}, "9H", 6, Stand},
		{"16v9 base hit below threshold", []string{"TS", "6D"}, "9H", 4, Hit},
		{"16v10 stands at TC 0", []string{"TS", "6D"}, "TH", 0, Stand},
		{"16v10 hits below TC 0", []string{"TS", "6D"}, "TH", -1, Hit},
		{"15v10 stands at TC 4", []string{"TS", "5D"}, "TH", 4, Stand},
		{"tens split vs 5 at TC 5", []string{"TS", "TD"}, "5H", 5, Split},
		{"tens split vs 6 at TC 4", []string{"KS", "QD"}, "6H", 4, Split},
		{"tens stand vs 6 at low count", []string{"KS", "QD"}, "6H", 3, Stand},
		{"10v10 doubles at TC 4", []string{"6S", "4D"}, "TH", 4, Double},
		{"12v3 stands at TC 2", []string{"8S", "4D"}, "3H", 2, Stand},
		{"13v2 hits below TC -1", []string{"9S", "4D"}, "2H", -2, Hit},
		{"13v2 stands at neutral", []string{"9S", "4D"}, "2H", 0, Stand},
		{"12v4 hits below TC 0", []string{"8S", "4D"}, "4H", -1, Hit},
		{"soft 16 never triggers hard 16 index", []string{"AS", "5D"}, "9H", 6, Hit},
		{"split pairs are not overridden by totals", []string{"8S", "8D"}, "9H", 6, Split},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(hand(t, tt.codes...), card(t, tt.upcard), tt.trueCount)
			if got != tt.want {
				t.Errorf("Recommend = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecommendTotalIgnoresPairs(t *testing.T) {
	// 8+8 vs 9 splits normally, but played as a plain total it is a
	// hard 16 and hits (or stands at a high count).
	if got := RecommendTotal(hand(t, "8S", "8D"), card(t, "9H"), 0); got != Hit {
		t.Errorf("RecommendTotal(8,8 vs 9, tc 0) = %s, want hit", got)
	}
	if got := RecommendTotal(hand(t, "8S", "8D"), card(t, "9H"), 6); got != Stand {
		t.Errorf("RecommendTotal(8,8 vs 9, tc 6) = %s, want stand", got)
	}
}

func TestAceUpcardNormalisation(t *testing.T) {
	// The Ace sums as 1 internally but the charts key it as 11.
	if got := Recommend(hand(t, "9S", "9D"), card(t, "AH"), 0); got != Stand {
		t.Errorf("9,9 vs A should stand, got %s", got)
	}
	if got := Recommend(hand(t, "6S", "5D"), card(t, "AH"), 0); got != Double {
		t.Errorf("11 vs A should double under H17, got %s", got)
	}
}
