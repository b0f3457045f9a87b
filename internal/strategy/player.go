// Package strategy holds the bot's decision making: a preflop raising table,
// a random policy for the later streets and the per-instance hand counter.
package strategy

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/tdobratz/dobratzbot/internal/deck"
)

// handsPerReport is how often HandComplete logs the running hand count
const handsPerReport = 50

// Player is one bot instance. It is not safe for concurrent use; the engine
// drives a player from a single goroutine.
type Player struct {
	table       *Table
	rng         *rand.Rand
	logger      *log.Logger
	handsPlayed int
}

// NewPlayer creates a player using table for preflop decisions. A nil table
// selects DefaultTable.
func NewPlayer(table *Table, rng *rand.Rand, logger *log.Logger) *Player {
	if table == nil {
		table = DefaultTable
	}
	return &Player{
		table:  table,
		rng:    rng,
		logger: logger.WithPrefix("strategy"),
	}
}

// GetAction chooses an action for the spot. It never fails: every input,
// however malformed, yields a decision.
func (p *Player) GetAction(spot Spot, hole []deck.Card) Decision {
	if len(hole) != 2 {
		p.logger.Warn("Unexpected hole card count, folding", "cards", len(hole))
		return Decision{Action: Fold, Reason: "malformed hand"}
	}

	var d Decision
	if spot.Street == Preflop {
		d = p.preflop(spot, hole[0], hole[1])
	} else {
		d = p.random(spot)
	}

	p.logger.Debug("Decided",
		"street", spot.Street,
		"hole", hole[0].Code()+hole[1].Code(),
		"pot", spot.Pot,
		"currentBet", spot.CurrentBet,
		"action", d.Action,
		"amount", d.Amount,
		"reason", d.Reason)
	return d
}

// HandComplete records a finished hand
func (p *Player) HandComplete(HandResult) {
	p.handsPlayed++
	if p.handsPlayed%handsPerReport == 0 {
		p.logger.Info("Hands played", "count", p.handsPlayed)
	}
}

// HandsPlayed returns the number of hands completed by this instance
func (p *Player) HandsPlayed() int {
	return p.handsPlayed
}

// preflop raises hands found in the table while the current bet is still
// within the entry's commitment limit, and plays passively otherwise.
func (p *Player) preflop(spot Spot, a, b deck.Card) Decision {
	entry, ok := p.table.Match(a, b)
	if !ok {
		return passive(spot, "not in table")
	}
	if !spot.canRaise() {
		return passive(spot, entry.Notation()+" but raise not available")
	}
	if float64(spot.CurrentBet) >= entry.MaxCommitment*float64(spot.MaxBet) {
		return passive(spot, entry.Notation()+" over commitment limit")
	}

	amount := spot.CurrentBet + entry.Increment
	if amount > spot.MaxBet {
		return passive(spot, entry.Notation()+" raise exceeds ceiling")
	}
	return Decision{Action: Raise, Amount: max(amount, spot.MinBet), Reason: entry.Notation() + " raise"}
}

// passive is the fallback when the bot will not raise: check when free,
// call while the bet is affordable, fold otherwise.
func passive(spot Spot, reason string) Decision {
	switch {
	case spot.Allows(Check):
		return Decision{Action: Check, Reason: reason}
	case spot.Allows(Call) && spot.CurrentBet <= spot.MaxBet:
		return Decision{Action: Call, Reason: reason}
	default:
		return Decision{Action: Fold, Reason: reason}
	}
}

// random picks uniformly among the legal actions that can actually be taken.
// Raises are sized uniformly between the minimum bet and 1.5x the pot.
func (p *Player) random(spot Spot) Decision {
	candidates := make([]Action, 0, len(spot.LegalActions))
	for _, a := range spot.LegalActions {
		if a == Raise && !spot.canRaise() {
			continue
		}
		candidates = append(candidates, a)
	}
	if len(candidates) == 0 {
		return passive(spot, "no usable action")
	}

	action := candidates[p.rng.IntN(len(candidates))]
	if action != Raise {
		return Decision{Action: action, Reason: "random"}
	}

	ceiling := min(spot.Pot*3/2, spot.MaxBet)
	if ceiling < spot.MinBet {
		ceiling = spot.MinBet
	}
	amount := spot.MinBet + p.rng.IntN(ceiling-spot.MinBet+1)
	return Decision{Action: Raise, Amount: amount, Reason: "random"}
}
