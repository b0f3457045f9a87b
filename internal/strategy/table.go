package strategy

import (
	"errors"
	"fmt"

	"github.com/tdobratz/dobratzbot/internal/deck"
)

// Entry is one starting hand the bot is prepared to raise with
type Entry struct {
	High   deck.Rank
	Low    deck.Rank
	Suited bool

	// Increment is added to the current bet to form the raise-to amount.
	Increment int

	// MaxCommitment is the fraction of the bet ceiling the bot will let the
	// current bet reach before it stops raising this hand.
	MaxCommitment float64
}

// Pair reports whether the entry is a pocket pair
func (e Entry) Pair() bool {
	return e.High == e.Low
}

// Notation returns the shorthand for the entry, e.g. "AA", "AKs", "KQo"
func (e Entry) Notation() string {
	switch {
	case e.Pair():
		return e.High.String() + e.Low.String()
	case e.Suited:
		return e.High.String() + e.Low.String() + "s"
	default:
		return e.High.String() + e.Low.String() + "o"
	}
}

// Matches reports whether the two cards form this starting hand. Rank order
// does not matter; suitedness must agree with the entry.
func (e Entry) Matches(a, b deck.Card) bool {
	ranks := (a.Rank == e.High && b.Rank == e.Low) || (a.Rank == e.Low && b.Rank == e.High)
	return ranks && deck.Suited(a, b) == e.Suited
}

// ParseEntry builds an entry from shorthand such as "AA", "AKs" or "KQo".
// Ranks may be given in either order.
func ParseEntry(notation string, increment int, maxCommitment float64) (Entry, error) {
	if len(notation) != 2 && len(notation) != 3 {
		return Entry{}, fmt.Errorf("invalid hand %q", notation)
	}
	r1, err := deck.ParseRank(notation[0])
	if err != nil {
		return Entry{}, fmt.Errorf("hand %q: %w", notation, err)
	}
	r2, err := deck.ParseRank(notation[1])
	if err != nil {
		return Entry{}, fmt.Errorf("hand %q: %w", notation, err)
	}
	e := Entry{High: max(r1, r2), Low: min(r1, r2), Increment: increment, MaxCommitment: maxCommitment}

	switch {
	case len(notation) == 2 && e.Pair():
	case len(notation) == 3 && !e.Pair() && (notation[2] == 's' || notation[2] == 'S'):
		e.Suited = true
	case len(notation) == 3 && !e.Pair() && (notation[2] == 'o' || notation[2] == 'O'):
	default:
		return Entry{}, fmt.Errorf("invalid hand %q: pairs take no suffix, other hands need s or o", notation)
	}
	return e, nil
}

// Table is an ordered, immutable list of entries. The first matching entry wins.
type Table struct {
	entries []Entry
}

// NewTable validates entries and returns a table holding a copy of them
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, errors.New("table has no entries")
	}
	entries = append([]Entry(nil), entries...)
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.High < deck.Two || e.High > deck.Ace || e.Low < deck.Two || e.Low > deck.Ace {
			return nil, fmt.Errorf("entry %d: rank out of range", i)
		}
		if e.Low > e.High {
			e.High, e.Low = e.Low, e.High
			entries[i] = e
		}
		if e.Pair() && e.Suited {
			return nil, fmt.Errorf("entry %d: pair %s cannot be suited", i, e.Notation())
		}
		if e.Increment <= 0 {
			return nil, fmt.Errorf("entry %d (%s): increment must be positive", i, e.Notation())
		}
		if e.MaxCommitment <= 0 || e.MaxCommitment > 1 {
			return nil, fmt.Errorf("entry %d (%s): max commitment must be in (0, 1]", i, e.Notation())
		}
		if prev, ok := seen[e.Notation()]; ok {
			return nil, fmt.Errorf("entry %d (%s): duplicates entry %d", i, e.Notation(), prev)
		}
		seen[e.Notation()] = i
	}
	return &Table{entries: entries}, nil
}

// MustNewTable is like NewTable but panics on invalid entries
func MustNewTable(entries []Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Match returns the first entry matching the two cards
func (t *Table) Match(a, b deck.Card) (Entry, bool) {
	i := t.index(a, b)
	if i < 0 {
		return Entry{}, false
	}
	return t.entries[i], true
}

func (t *Table) index(a, b deck.Card) int {
	for i, e := range t.entries {
		if e.Matches(a, b) {
			return i
		}
	}
	return -1
}

// Entries returns a copy of the entries in priority order
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Cell is one square of the 13x13 starting-hand grid
type Cell struct {
	Notation string
	Entry    Entry
	Raises   bool
}

// Grid lays the table out as the usual starting-hand chart: aces in the top
// left, pairs on the diagonal, suited hands above it and offsuit below.
func (t *Table) Grid() [13][13]Cell {
	var grid [13][13]Cell
	for row := 0; row < 13; row++ {
		for col := 0; col < 13; col++ {
			r1, r2 := deck.Ace-deck.Rank(row), deck.Ace-deck.Rank(col)
			want := Entry{High: max(r1, r2), Low: min(r1, r2), Suited: col > row}
			cell := Cell{Notation: want.Notation()}
			for _, e := range t.entries {
				if e.High == want.High && e.Low == want.Low && e.Suited == want.Suited {
					cell.Entry, cell.Raises = e, true
					break
				}
			}
			grid[row][col] = cell
		}
	}
	return grid
}

// DefaultTable is the built-in raising table, strongest hands first
var DefaultTable = MustNewTable([]Entry{
	{High: deck.Ace, Low: deck.Ace, Increment: 80, MaxCommitment: 0.9},
	{High: deck.King, Low: deck.King, Increment: 70, MaxCommitment: 0.85},
	{High: deck.Queen, Low: deck.Queen, Increment: 60, MaxCommitment: 0.8},
	{High: deck.Ace, Low: deck.King, Suited: true, Increment: 60, MaxCommitment: 0.8},
	{High: deck.Jack, Low: deck.Jack, Increment: 50, MaxCommitment: 0.7},
	{High: deck.Ace, Low: deck.King, Increment: 50, MaxCommitment: 0.7},
	{High: deck.Ace, Low: deck.Queen, Suited: true, Increment: 45, MaxCommitment: 0.6},
	{High: deck.Ten, Low: deck.Ten, Increment: 40, MaxCommitment: 0.6},
	{High: deck.Ace, Low: deck.Queen, Increment: 40, MaxCommitment: 0.5},
	{High: deck.Ace, Low: deck.Jack, Suited: true, Increment: 40, MaxCommitment: 0.5},
	{High: deck.King, Low: deck.Queen, Suited: true, Increment: 35, MaxCommitment: 0.45},
	{High: deck.Nine, Low: deck.Nine, Increment: 30, MaxCommitment: 0.4},
	{High: deck.Ace, Low: deck.Ten, Suited: true, Increment: 30, MaxCommitment: 0.4},
	{High: deck.King, Low: deck.Jack, Suited: true, Increment: 30, MaxCommitment: 0.35},
	{High: deck.Ace, Low: deck.Jack, Increment: 30, MaxCommitment: 0.35},
	{High: deck.King, Low: deck.Queen, Increment: 25, MaxCommitment: 0.3},
	{High: deck.Queen, Low: deck.Jack, Suited: true, Increment: 25, MaxCommitment: 0.3},
	{High: deck.King, Low: deck.Ten, Suited: true, Increment: 20, MaxCommitment: 0.25},
	{High: deck.Jack, Low: deck.Ten, Suited: true, Increment: 20, MaxCommitment: 0.25},
	{High: deck.Queen, Low: deck.Ten, Suited: true, Increment: 20, MaxCommitment: 0.2},
})
