package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns the single-character code for a suit (H, D, C, S)
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph for display
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are low: blackjack counts an Ace
// as 1 and promotes it to 11 during hand evaluation, never at the card level.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the single-character code for a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "?"
	}
}

// Value returns the blackjack value of a rank: Ace=1, face cards=10,
// everything else its pip count.
func (r Rank) Value() int {
	if r >= Ten {
		return 10
	}
	return int(r)
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Value returns the blackjack value of the card
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsTenValue returns true for Ten, Jack, Queen and King
func (c Card) IsTenValue() bool {
	return c.Rank.Value() == 10
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Code returns the canonical two-character card code, e.g. "AS" for
// the Ace of Spades. This is the external serialization of a card.
func (c Card) Code() string {
	return c.Rank.String() + c.Suit.String()
}

// String returns the display form of a card (e.g. "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// ParseCard parses a two-character card code like "AS" or "TH".
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("card code must be 2 characters, got %q", code)
	}

	var rank Rank
	switch code[0] {
	case 'A':
		rank = Ace
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(code[0] - '0')
	case 'T':
		rank = Ten
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	default:
		return Card{}, fmt.Errorf("invalid rank character %q in %q", code[0], code)
	}

	var suit Suit
	switch code[1] {
	case 'H':
		suit = Hearts
	case 'D':
		suit = Diamonds
	case 'C':
		suit = Clubs
	case 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit character %q in %q", code[1], code)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard parses a card code, panicking on error. For tests and
// fixed fixtures only.
func MustParseCard(code string) Card {
	c, err := ParseCard(code)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses a list of two-character card codes.
func ParseCards(codes ...string) ([]Card, error) {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Codes returns the two-character codes for a list of cards.
func Codes(cards []Card) []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return codes
}
