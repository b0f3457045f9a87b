package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdobratz/dobratzbot/internal/randutil"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "pocket aces",
			input: "AsAh",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: Ace},
			},
		},
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Nine},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:  "spaces between cards",
			input: "7c 2d",
			expected: []Card{
				{Suit: Clubs, Rank: Seven},
				{Suit: Diamonds, Rank: Two},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	assert.Equal(t, []Card{{Suit: Spades, Rank: Ace}, {Suit: Spades, Rank: King}}, MustParseCards("AsKs"))
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestCardStrings(t *testing.T) {
	card := NewCard(Hearts, Ten)
	assert.Equal(t, "T♥", card.String())
	assert.Equal(t, "Th", card.Code())

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(suit, rank)
			parsed, err := ParseCard(c.Code())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	}
}

func TestParseCodes(t *testing.T) {
	cards, err := ParseCodes([]string{"Kd", "9c"})
	require.NoError(t, err)
	assert.Equal(t, []Card{{Suit: Diamonds, Rank: King}, {Suit: Clubs, Rank: Nine}}, cards)

	_, err = ParseCodes([]string{"Kd", "1c"})
	require.Error(t, err)
}

func TestSuited(t *testing.T) {
	assert.True(t, Suited(MustParseCards("Ah")[0], MustParseCards("Kh")[0]))
	assert.False(t, Suited(MustParseCards("Ah")[0], MustParseCards("Ks")[0]))
}

func TestDeckDealsAllCardsOnce(t *testing.T) {
	d := NewDeck(randutil.New(7))
	d.Shuffle()

	seen := make(map[Card]bool)
	for range 52 {
		card, ok := d.Deal()
		require.True(t, ok)
		require.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
	assert.Len(t, seen, 52)

	_, ok := d.Deal()
	assert.False(t, ok)

	d.Reset()
	assert.Len(t, d.DealN(60), 52)
}

func TestDeckShuffleDeterministic(t *testing.T) {
	a := NewDeck(randutil.New(42))
	b := NewDeck(randutil.New(42))
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.DealN(10), b.DealN(10))
}
