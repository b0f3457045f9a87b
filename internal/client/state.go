package client

import "github.com/tdobratz/dobratzbot/internal/protocol"

// GameState is the client's running view of the current hand
type GameState struct {
	HandID        string
	Seat          int
	Pot           int
	Chips         int
	Bet           int
	StartingChips int
	BigBlind      int
	Players       []protocol.Player
	LastAction    protocol.PlayerAction
	HoleCards     []string
	Board         []string
	Street        string
	Button        int
	ActiveCount   int
	HandsComplete int
}

func (s *GameState) startHand(start protocol.HandStart) {
	s.HandID = start.HandID
	s.Seat = start.YourSeat
	s.Button = start.Button
	s.BigBlind = start.BigBlind
	s.HoleCards = start.HoleCards
	s.Board = nil
	s.Street = "preflop"
	s.Pot = 0
	s.setPlayers(start.Players)
	// Blinds are already posted; count them as part of the starting stack.
	s.StartingChips = s.Chips + s.Bet
}

func (s *GameState) setPlayers(players []protocol.Player) {
	s.Players = players
	s.ActiveCount = 0
	for _, p := range players {
		if !p.Folded {
			s.ActiveCount++
		}
		if p.Seat == s.Seat {
			s.Chips = p.Chips
			s.Bet = p.Bet
		}
	}
}

func (s *GameState) applyAction(action protocol.PlayerAction) {
	s.LastAction = action
	s.Pot = action.Pot
	for i := range s.Players {
		if s.Players[i].Seat != action.Seat {
			continue
		}
		s.Players[i].Chips = action.PlayerChips
		s.Players[i].Bet = action.PlayerBet
		if action.Action == "fold" || action.Action == "timeout_fold" {
			if !s.Players[i].Folded {
				s.ActiveCount--
			}
			s.Players[i].Folded = true
		}
	}
	if action.Seat == s.Seat {
		s.Chips = action.PlayerChips
		s.Bet = action.PlayerBet
	}
}

func (s *GameState) changeStreet(street protocol.StreetChange) {
	s.Street = street.Street
	s.Board = street.Board
	s.Bet = 0
	for i := range s.Players {
		s.Players[i].Bet = 0
	}
}

// payout works out what this seat won. Winners are matched by hole cards when
// both sides have them, otherwise by any of the names the engine may use.
func (s *GameState) payout(result protocol.HandResult, names []string) int {
	total := 0
	for _, w := range result.Winners {
		if len(w.HoleCards) == 2 && len(s.HoleCards) == 2 {
			wc1, wc2 := w.HoleCards[0], w.HoleCards[1]
			mc1, mc2 := s.HoleCards[0], s.HoleCards[1]
			if (wc1 == mc1 && wc2 == mc2) || (wc1 == mc2 && wc2 == mc1) {
				total += w.Amount
				continue
			}
		}
		for _, name := range names {
			if w.Name == name {
				total += w.Amount
				break
			}
		}
	}
	return total
}
