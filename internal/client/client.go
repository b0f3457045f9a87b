// Package client connects a bot to the poker engine over a websocket and
// feeds engine events to a Handler.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/tdobratz/dobratzbot/internal/protocol"
)

// ErrNotConnected is returned by Run before a successful Connect
var ErrNotConnected = errors.New("not connected")

// Handler defines the interface for bot decision-making
type Handler interface {
	// OnHandStart is called when a new hand begins
	OnHandStart(state *GameState, start protocol.HandStart) error

	// OnActionRequest is called when the bot needs to make a decision
	OnActionRequest(state *GameState, req protocol.ActionRequest) (string, int, error)

	// OnGameUpdate is called when the game state changes
	OnGameUpdate(state *GameState, update protocol.GameUpdate) error

	// OnPlayerAction is called when any player acts
	OnPlayerAction(state *GameState, action protocol.PlayerAction) error

	// OnStreetChange is called when the betting round changes
	OnStreetChange(state *GameState, street protocol.StreetChange) error

	// OnHandResult is called when a hand completes
	OnHandResult(state *GameState, result protocol.HandResult) error

	// OnGameCompleted is called when the game finishes (return io.EOF to exit)
	OnGameCompleted(state *GameState, completed protocol.GameCompleted) error
}

// Option configures a Bot
type Option func(*Bot)

// WithClock sets the clock used to time decisions
func WithClock(clock quartz.Clock) Option {
	return func(b *Bot) {
		b.clock = clock
	}
}

// WithDialer sets the websocket dialer
func WithDialer(dialer *websocket.Dialer) Option {
	return func(b *Bot) {
		b.dialer = dialer
	}
}

// Bot drives a Handler from engine messages
type Bot struct {
	id      string
	conn    *websocket.Conn
	base    *log.Logger
	logger  *log.Logger
	handler Handler
	state   *GameState
	clock   quartz.Clock
	dialer  *websocket.Dialer
}

// New creates a new bot with the given handler
func New(id string, handler Handler, logger *log.Logger, opts ...Option) *Bot {
	base := logger.WithPrefix("client").With("bot", id)
	b := &Bot{
		id:      id,
		base:    base,
		logger:  base,
		handler: handler,
		state:   &GameState{},
		clock:   quartz.NewReal(),
		dialer:  &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ID returns the bot's ID
func (b *Bot) ID() string {
	return b.id
}

// State returns the current game state
func (b *Bot) State() *GameState {
	return b.state
}

// Connect dials the engine and announces the bot for the given game
func (b *Bot) Connect(ctx context.Context, serverURL, game string) error {
	u, err := url.Parse(serverURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		u.Scheme = "ws"
	}

	conn, _, err := b.dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	b.conn = conn
	b.logger = b.base.With("session", uuid.NewString())

	if err := b.send(&protocol.Connect{
		Type: protocol.TypeConnect,
		Name: b.id,
		Game: game,
		Role: "player",
	}); err != nil {
		conn.Close()
		b.conn = nil
		return err
	}
	b.logger.Info("Connected", "url", u.String(), "game", game)
	return nil
}

// Run reads engine messages until the context is cancelled, the engine
// closes the connection, or the handler ends the game with io.EOF.
func (b *Bot) Run(ctx context.Context) error {
	if b.conn == nil {
		return ErrNotConnected
	}
	conn := b.conn
	defer func() {
		conn.Close()
		b.conn = nil
	}()

	// Unblock ReadMessage on cancellation.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				b.logger.Info("Server closed connection")
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		if err := b.handle(data); err != nil {
			if errors.Is(err, io.EOF) {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					b.clock.Now().Add(time.Second))
				return nil
			}
			b.logger.Error("Handler error", "error", err)
		}
	}
}

func (b *Bot) handle(data []byte) error {
	msg, err := protocol.Decode(data)
	if errors.Is(err, protocol.ErrUnknownMessageType) {
		b.logger.Debug("Ignoring message", "error", err)
		return nil
	}
	if err != nil {
		return err
	}

	switch m := msg.(type) {
	case *protocol.ActionRequest:
		return b.onActionRequest(*m)

	case *protocol.HandStart:
		b.state.startHand(*m)
		return b.handler.OnHandStart(b.state, *m)

	case *protocol.GameUpdate:
		b.state.Pot = m.Pot
		b.state.setPlayers(m.Players)
		return b.handler.OnGameUpdate(b.state, *m)

	case *protocol.PlayerAction:
		b.state.applyAction(*m)
		return b.handler.OnPlayerAction(b.state, *m)

	case *protocol.StreetChange:
		b.state.changeStreet(*m)
		return b.handler.OnStreetChange(b.state, *m)

	case *protocol.HandResult:
		// No GameUpdate follows the award, so credit our winnings here.
		b.state.Chips += b.state.payout(*m, b.names())
		b.state.HandsComplete++
		return b.handler.OnHandResult(b.state, *m)

	case *protocol.GameCompleted:
		b.logger.Info("Game completed", "hands", m.HandsCompleted, "reason", m.Reason)
		return b.handler.OnGameCompleted(b.state, *m)

	case *protocol.Error:
		b.logger.Warn("Engine error", "code", m.Code, "message", m.Message)
		return nil

	default:
		b.logger.Debug("Ignoring message", "type", fmt.Sprintf("%T", msg))
		return nil
	}
}

func (b *Bot) onActionRequest(req protocol.ActionRequest) error {
	start := b.clock.Now()
	action, amount, err := b.handler.OnActionRequest(b.state, req)
	if err != nil {
		b.logger.Error("OnActionRequest error", "error", err)
		action, amount = "fold", 0
	}

	elapsed := b.clock.Since(start)
	if budget := time.Duration(req.TimeRemaining) * time.Millisecond; budget > 0 && elapsed > budget {
		b.logger.Warn("Slow decision", "elapsed", elapsed, "budget", budget)
	}

	return b.send(&protocol.Action{
		Type:   protocol.TypeAction,
		Action: action,
		Amount: amount,
	})
}

// names lists the labels the engine may use for this bot in results
func (b *Bot) names() []string {
	names := []string{b.id}
	if len(b.id) >= 8 {
		names = append(names, b.id[:8])
	}
	return append(names,
		fmt.Sprintf("player-%d", b.state.Seat+1),
		fmt.Sprintf("bot-%d", b.state.Seat+1))
}

func (b *Bot) send(msg any) error {
	payload, err := protocol.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := b.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return nil
}
