package strategy

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdobratz/dobratzbot/internal/deck"
	"github.com/tdobratz/dobratzbot/internal/randutil"
)

func newTestPlayer(seed int64) *Player {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return NewPlayer(nil, randutil.New(seed), logger)
}

func preflopSpot(currentBet, minBet, maxBet int, legal ...Action) Spot {
	return Spot{
		Street:       Preflop,
		Pot:          30,
		CurrentBet:   currentBet,
		MinBet:       minBet,
		MaxBet:       maxBet,
		LegalActions: legal,
	}
}

func TestPreflopDecisions(t *testing.T) {
	tests := []struct {
		name   string
		hole   string
		spot   Spot
		action Action
		amount int
	}{
		{
			name:   "aces raise by increment",
			hole:   "AsAh",
			spot:   preflopSpot(0, 20, 1000, Fold, Call, Raise),
			action: Raise,
			amount: 80,
		},
		{
			name:   "increment added to current bet",
			hole:   "KsKh",
			spot:   preflopSpot(820, 840, 1000, Fold, Call, Raise),
			action: Raise,
			amount: 890,
		},
		{
			name:   "suited and offsuit differ",
			hole:   "AhKh",
			spot:   preflopSpot(20, 40, 1000, Fold, Call, Raise),
			action: Raise,
			amount: 80,
		},
		{
			name:   "offsuit entry",
			hole:   "KsAh",
			spot:   preflopSpot(20, 40, 1000, Fold, Call, Raise),
			action: Raise,
			amount: 70,
		},
		{
			name:   "raise lifted to minimum bet",
			hole:   "AsAh",
			spot:   preflopSpot(0, 100, 1000, Fold, Call, Raise),
			action: Raise,
			amount: 100,
		},
		{
			name:   "over commitment limit calls",
			hole:   "AsAh",
			spot:   preflopSpot(900, 920, 1000, Fold, Call, Raise),
			action: Call,
		},
		{
			name:   "raise beyond ceiling calls",
			hole:   "AsAh",
			spot:   preflopSpot(0, 20, 50, Fold, Call, Raise),
			action: Call,
		},
		{
			name:   "raise not legal",
			hole:   "AsAh",
			spot:   preflopSpot(20, 0, 1000, Fold, Call),
			action: Call,
		},
		{
			name:   "no valid raise amount",
			hole:   "AsAh",
			spot:   preflopSpot(20, 200, 150, Fold, Call, Raise),
			action: Call,
		},
		{
			name:   "unlisted hand calls",
			hole:   "7c2d",
			spot:   preflopSpot(20, 40, 1000, Fold, Call),
			action: Call,
		},
		{
			name:   "unlisted hand checks when free",
			hole:   "7c2d",
			spot:   preflopSpot(20, 40, 1000, Fold, Check, Raise),
			action: Check,
		},
		{
			name:   "unaffordable call folds",
			hole:   "7c2d",
			spot:   preflopSpot(2000, 2020, 1000, Fold, Call),
			action: Fold,
		},
		{
			name:   "only fold legal",
			hole:   "7c2d",
			spot:   preflopSpot(20, 40, 1000, Fold),
			action: Fold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestPlayer(1).GetAction(tt.spot, cards(t, tt.hole))
			assert.Equal(t, tt.action, d.Action, d.Reason)
			assert.Equal(t, tt.amount, d.Amount)
			assert.NotEmpty(t, d.Reason)
		})
	}
}

func TestPreflopRaiseProperty(t *testing.T) {
	p := newTestPlayer(3)
	for _, e := range DefaultTable.Entries() {
		var hole string
		switch {
		case e.Pair():
			hole = e.High.String() + "s" + e.Low.String() + "h"
		case e.Suited:
			hole = e.High.String() + "d" + e.Low.String() + "d"
		default:
			hole = e.High.String() + "c" + e.Low.String() + "h"
		}
		for _, current := range []int{0, 10, 100, 250, 500, 800, 950} {
			spot := preflopSpot(current, current, 1000, Fold, Call, Raise)
			d := p.GetAction(spot, cards(t, hole))
			raises := current+e.Increment <= spot.MaxBet && float64(current) < e.MaxCommitment*float64(spot.MaxBet)
			if raises {
				assert.Equal(t, Raise, d.Action, "%s at %d", e.Notation(), current)
				assert.Equal(t, current+e.Increment, d.Amount)
			} else {
				assert.Equal(t, Call, d.Action, "%s at %d", e.Notation(), current)
				assert.Zero(t, d.Amount)
			}
		}
	}
}

func TestMalformedHandFolds(t *testing.T) {
	p := newTestPlayer(1)
	for _, street := range []Street{Preflop, Flop, River} {
		for _, hole := range []string{"", "As", "AsAhAd"} {
			spot := Spot{Street: street, Pot: 100, MinBet: 20, MaxBet: 1000, LegalActions: []Action{Check, Raise}}
			d := p.GetAction(spot, cards(t, hole))
			assert.Equal(t, Decision{Action: Fold, Reason: "malformed hand"}, d)
		}
	}
}

func TestRandomWithoutRaiseHasNoAmount(t *testing.T) {
	p := newTestPlayer(11)
	legal := []Action{Fold, Check, Call, AllIn}
	seen := make(map[Action]bool)
	for range 500 {
		d := p.GetAction(Spot{Street: Flop, Pot: 100, MinBet: 20, MaxBet: 1000, LegalActions: legal}, cards(t, "7c2d"))
		assert.Contains(t, legal, d.Action)
		assert.Zero(t, d.Amount)
		seen[d.Action] = true
	}
	assert.Len(t, seen, len(legal), "every legal action should come up")
}

func TestRandomRaiseBounds(t *testing.T) {
	tests := []struct {
		name     string
		pot      int
		minBet   int
		maxBet   int
		wantHigh int
	}{
		{name: "pot bounded", pot: 100, minBet: 20, maxBet: 1000, wantHigh: 150},
		{name: "stack bounded", pot: 1000, minBet: 20, maxBet: 300, wantHigh: 300},
		{name: "ceiling below minimum", pot: 10, minBet: 20, maxBet: 1000, wantHigh: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(5)
			spot := Spot{Street: Turn, Pot: tt.pot, MinBet: tt.minBet, MaxBet: tt.maxBet, LegalActions: []Action{Raise}}
			hitHigh := false
			for range 2000 {
				d := p.GetAction(spot, cards(t, "QcJd"))
				require.Equal(t, Raise, d.Action)
				require.GreaterOrEqual(t, d.Amount, tt.minBet)
				require.LessOrEqual(t, d.Amount, tt.wantHigh)
				hitHigh = hitHigh || d.Amount == tt.wantHigh
			}
			assert.True(t, hitHigh, "upper bound is inclusive")
		})
	}
}

func TestRandomDropsImpossibleRaise(t *testing.T) {
	p := newTestPlayer(9)
	spot := Spot{Street: River, Pot: 100, MinBet: 500, MaxBet: 200, LegalActions: []Action{Check, Raise}}
	for range 200 {
		d := p.GetAction(spot, cards(t, "QcJd"))
		assert.Equal(t, Check, d.Action)
	}

	spot.LegalActions = []Action{Raise}
	assert.Equal(t, Fold, p.GetAction(spot, cards(t, "QcJd")).Action)

	spot.LegalActions = nil
	assert.Equal(t, Fold, p.GetAction(spot, cards(t, "QcJd")).Action)
}

func TestRandomIsReproducible(t *testing.T) {
	spot := Spot{Street: Flop, Pot: 400, MinBet: 20, MaxBet: 1000, LegalActions: []Action{Fold, Call, Raise}}
	a, b := newTestPlayer(77), newTestPlayer(77)
	for range 50 {
		assert.Equal(t, a.GetAction(spot, cards(t, "9h8h")), b.GetAction(spot, cards(t, "9h8h")))
	}
}

func TestHandCompleteLogsEveryFifty(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	p := NewPlayer(nil, randutil.New(1), logger)

	for i := 1; i <= 151; i++ {
		p.HandComplete(HandResult{HandID: "h"})
		require.Equal(t, i, p.HandsPlayed())
		assert.Equal(t, i/50, strings.Count(buf.String(), "Hands played"), "after %d hands", i)
	}
	assert.Contains(t, buf.String(), "count=150")
}

func TestDecisionDebugLog(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	p := NewPlayer(nil, randutil.New(1), logger)

	d := p.GetAction(preflopSpot(0, 20, 1000, Fold, Call, Raise), deck.MustParseCards("AsAh"))
	require.Equal(t, Raise, d.Action)
	assert.Contains(t, buf.String(), "hole=AsAh")
	assert.Contains(t, buf.String(), "action=raise")
	assert.Contains(t, buf.String(), "amount=80")
}
