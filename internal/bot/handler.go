// Package bot connects the strategy to the engine client.
package bot

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tdobratz/dobratzbot/internal/client"
	"github.com/tdobratz/dobratzbot/internal/deck"
	"github.com/tdobratz/dobratzbot/internal/protocol"
	"github.com/tdobratz/dobratzbot/internal/statistics"
	"github.com/tdobratz/dobratzbot/internal/strategy"
)

// Handler implements client.Handler by asking a strategy.Player for decisions
type Handler struct {
	player *strategy.Player
	logger *log.Logger
	stats  statistics.Statistics
}

// NewHandler wraps player for use with a client.Bot
func NewHandler(player *strategy.Player, logger *log.Logger) *Handler {
	return &Handler{player: player, logger: logger.WithPrefix("bot")}
}

func (h *Handler) OnHandStart(state *client.GameState, start protocol.HandStart) error {
	h.logger.Debug("Hand started", "hand", start.HandID, "hole", start.HoleCards, "chips", state.Chips)
	return nil
}

func (*Handler) OnGameUpdate(*client.GameState, protocol.GameUpdate) error     { return nil }
func (*Handler) OnPlayerAction(*client.GameState, protocol.PlayerAction) error { return nil }
func (*Handler) OnStreetChange(*client.GameState, protocol.StreetChange) error { return nil }

func (h *Handler) OnActionRequest(state *client.GameState, req protocol.ActionRequest) (string, int, error) {
	hole, err := deck.ParseCodes(state.HoleCards)
	if err != nil {
		// An empty hand makes the player fold.
		h.logger.Warn("Unreadable hole cards", "cards", state.HoleCards, "error", err)
		hole = nil
	}

	street, err := strategy.ParseStreet(state.Street)
	if err != nil {
		h.logger.Warn("Unknown street, treating as postflop", "street", state.Street)
		street = strategy.Flop
	}

	d := h.player.GetAction(SpotFromRequest(state, req, street), hole)
	return d.Action.String(), d.Amount, nil
}

func (h *Handler) OnHandResult(state *client.GameState, result protocol.HandResult) error {
	net := state.Chips - state.StartingChips
	h.player.HandComplete(strategy.HandResult{HandID: result.HandID, Net: net})

	bb := float64(max(state.BigBlind, 1))
	pot := 0
	for _, w := range result.Winners {
		pot += w.Amount
	}
	h.stats.Add(statistics.HandResult{
		NetBB:    float64(net) / bb,
		Showdown: len(result.Showdown) > 0,
		PotBB:    float64(pot) / bb,
	})
	return nil
}

func (h *Handler) OnGameCompleted(state *client.GameState, completed protocol.GameCompleted) error {
	kv := append([]any{"game", completed.GameID, "chips", state.Chips}, h.stats.KeyVals()...)
	h.logger.Info("Game over", kv...)
	return io.EOF
}

// Stats returns the results recorded so far
func (h *Handler) Stats() *statistics.Statistics {
	return &h.stats
}

// SpotFromRequest converts the engine's request into the strategy's view.
// Bets are raise-to totals: the current bet is what we have in plus what it
// costs to call, and the ceiling is everything we have in front of us.
func SpotFromRequest(state *client.GameState, req protocol.ActionRequest, street strategy.Street) strategy.Spot {
	pot := req.Pot
	if pot == 0 {
		pot = state.Pot
	}
	return strategy.Spot{
		Street:       street,
		Pot:          pot,
		CurrentBet:   state.Bet + req.ToCall,
		LegalActions: strategy.ParseActions(req.ValidActions),
		MinBet:       req.MinBet,
		MaxBet:       state.Bet + state.Chips,
	}
}

var _ client.Handler = (*Handler)(nil)
