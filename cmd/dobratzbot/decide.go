package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tdobratz/dobratzbot/internal/config"
	"github.com/tdobratz/dobratzbot/internal/deck"
	"github.com/tdobratz/dobratzbot/internal/randutil"
	"github.com/tdobratz/dobratzbot/internal/strategy"
)

type DecideCmd struct {
	Hole       string   `arg:"" help:"Hole cards, e.g. AsKd"`
	Street     string   `short:"s" default:"preflop" enum:"preflop,flop,turn,river" help:"Betting street"`
	Pot        int      `default:"30" help:"Chips in the pot"`
	CurrentBet int      `default:"20" help:"Current bet to match"`
	MinBet     int      `default:"40" help:"Minimum raise-to amount"`
	MaxBet     int      `default:"1000" help:"Maximum raise-to amount (own stack plus bet)"`
	Legal      []string `default:"fold,call,raise" help:"Legal actions"`
	Seed       int64    `default:"1" help:"Random seed for postflop decisions"`
	Config     string   `short:"c" default:"dobratzbot.hcl" help:"Path to HCL configuration file"`
}

func (c *DecideCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *DecideCmd) run(w io.Writer) error {
	hole, err := deck.ParseCards(c.Hole)
	if err != nil {
		return fmt.Errorf("invalid hole cards: %w", err)
	}
	street, err := strategy.ParseStreet(c.Street)
	if err != nil {
		return err
	}
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	table, err := cfg.Table()
	if err != nil {
		return err
	}

	spot := strategy.Spot{
		Street:       street,
		Pot:          c.Pot,
		CurrentBet:   c.CurrentBet,
		LegalActions: strategy.ParseActions(c.Legal),
		MinBet:       c.MinBet,
		MaxBet:       c.MaxBet,
	}
	player := strategy.NewPlayer(table, randutil.New(c.Seed), log.New(io.Discard))
	d := player.GetAction(spot, hole)

	fmt.Fprintf(w, "%s\n", d)
	if d.Reason != "" {
		fmt.Fprintf(w, "reason: %s\n", d.Reason)
	}
	return nil
}
