// Package protocol defines the messages exchanged with the poker engine.
// Every message is a JSON object carrying its kind in the "type" field.
package protocol

// Client -> Server
const (
	TypeConnect = "connect"
	TypeAction  = "action"
)

// Server -> Client
const (
	TypeHandStart     = "hand_start"
	TypeActionRequest = "action_request"
	TypeGameUpdate    = "game_update"
	TypePlayerAction  = "player_action"
	TypeStreetChange  = "street_change"
	TypeHandResult    = "hand_result"
	TypeGameCompleted = "game_completed"
	TypeError         = "error"
)

// Connect is sent by the bot right after the websocket opens
type Connect struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Game string `json:"game,omitempty"`
	Role string `json:"role,omitempty"`
}

// Action is sent in response to an ActionRequest
type Action struct {
	Type   string `json:"type"`
	Action string `json:"action"` // fold, check, call, raise, allin
	Amount int    `json:"amount"` // raise-to total, only for raise
}

// HandStart is sent when a new hand begins
type HandStart struct {
	Type       string   `json:"type"`
	HandID     string   `json:"hand_id"`
	HoleCards  []string `json:"hole_cards"`
	YourSeat   int      `json:"your_seat"`
	Button     int      `json:"button"`
	Players    []Player `json:"players"`
	SmallBlind int      `json:"small_blind"`
	BigBlind   int      `json:"big_blind"`
}

// Player info in a hand
type Player struct {
	Seat   int    `json:"seat"`
	Name   string `json:"name"`
	Chips  int    `json:"chips"`
	Bet    int    `json:"bet,omitempty"`
	Folded bool   `json:"folded,omitempty"`
	AllIn  bool   `json:"all_in,omitempty"`
}

// ActionRequest asks the bot to act
type ActionRequest struct {
	Type          string   `json:"type"`
	HandID        string   `json:"hand_id"`
	TimeRemaining int      `json:"time_remaining"` // milliseconds
	ValidActions  []string `json:"valid_actions"`
	ToCall        int      `json:"to_call"`
	MinBet        int      `json:"min_bet"`
	MinRaise      int      `json:"min_raise"`
	Pot           int      `json:"pot"`
}

// GameUpdate is broadcast when any player acts
type GameUpdate struct {
	Type    string   `json:"type"`
	HandID  string   `json:"hand_id"`
	Pot     int      `json:"pot"`
	Players []Player `json:"players"`
}

// PlayerAction is broadcast after each player action, blinds included
type PlayerAction struct {
	Type        string `json:"type"`
	HandID      string `json:"hand_id"`
	Street      string `json:"street"`
	Seat        int    `json:"seat"`
	PlayerName  string `json:"player_name"`
	Action      string `json:"action"`
	AmountPaid  int    `json:"amount_paid"`
	PlayerBet   int    `json:"player_bet"`
	PlayerChips int    `json:"player_chips"`
	Pot         int    `json:"pot"`
}

// StreetChange is sent when moving to the next betting round
type StreetChange struct {
	Type   string   `json:"type"`
	HandID string   `json:"hand_id"`
	Street string   `json:"street"`
	Board  []string `json:"board"`
}

// HandResult is sent at hand completion
type HandResult struct {
	Type     string         `json:"type"`
	HandID   string         `json:"hand_id"`
	Winners  []Winner       `json:"winners"`
	Board    []string       `json:"board"`
	Showdown []ShowdownHand `json:"showdown,omitempty"`
}

// Winner info
type Winner struct {
	Name      string   `json:"name"`
	Amount    int      `json:"amount"`
	HoleCards []string `json:"hole_cards,omitempty"`
	HandRank  string   `json:"hand_rank,omitempty"`
}

// ShowdownHand is a losing hand shown at showdown
type ShowdownHand struct {
	Name      string   `json:"name"`
	HoleCards []string `json:"hole_cards"`
	HandRank  string   `json:"hand_rank"`
}

// GameCompleted is sent once the engine stops dealing to this game
type GameCompleted struct {
	Type           string `json:"type"`
	GameID         string `json:"game_id"`
	HandsCompleted int    `json:"hands_completed"`
	Reason         string `json:"reason,omitempty"`
}

// Error is sent when the engine rejects something the bot did
type Error struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
