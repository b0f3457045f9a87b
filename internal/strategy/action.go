package strategy

import (
	"fmt"
	"slices"
	"strings"
)

// Action is a move the engine lets a player make
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

// String returns the wire name of the action
func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case AllIn:
		return "allin"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction maps a wire name to an Action. "bet" is treated as a raise.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold":
		return Fold, nil
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "raise", "bet":
		return Raise, nil
	case "allin", "all-in", "all_in":
		return AllIn, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

// ParseActions parses a list of wire names, skipping ones it does not know.
// The engine may offer actions this bot never takes.
func ParseActions(names []string) []Action {
	actions := make([]Action, 0, len(names))
	for _, name := range names {
		if a, err := ParseAction(name); err == nil && !slices.Contains(actions, a) {
			actions = append(actions, a)
		}
	}
	return actions
}

// Street is a betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// ParseStreet maps a street name to a Street
func ParseStreet(s string) (Street, error) {
	switch strings.ToLower(s) {
	case "preflop", "pre-flop", "":
		return Preflop, nil
	case "flop":
		return Flop, nil
	case "turn":
		return Turn, nil
	case "river":
		return River, nil
	default:
		return 0, fmt.Errorf("unknown street %q", s)
	}
}

// Spot is the engine-owned snapshot a decision is made from. Bet amounts are
// raise-to totals for the current betting round.
type Spot struct {
	Street       Street
	Pot          int
	CurrentBet   int
	LegalActions []Action
	MinBet       int
	MaxBet       int
}

// Allows reports whether a is among the legal actions
func (s Spot) Allows(a Action) bool {
	return slices.Contains(s.LegalActions, a)
}

// canRaise reports whether a raise is legal and some amount satisfies the bounds
func (s Spot) canRaise() bool {
	return s.Allows(Raise) && s.MinBet <= s.MaxBet
}

// Decision is the bot's answer to an action request. Amount is zero for
// every action except Raise.
type Decision struct {
	Action Action
	Amount int
	Reason string
}

func (d Decision) String() string {
	if d.Action == Raise {
		return fmt.Sprintf("%s %d", d.Action, d.Amount)
	}
	return d.Action.String()
}

// HandResult is what the engine reports once a hand is over
type HandResult struct {
	HandID string
	Net    int // chips won or lost over the hand
}
