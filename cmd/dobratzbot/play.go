package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/tdobratz/dobratzbot/internal/bot"
	"github.com/tdobratz/dobratzbot/internal/client"
	"github.com/tdobratz/dobratzbot/internal/config"
	"github.com/tdobratz/dobratzbot/internal/randutil"
	"github.com/tdobratz/dobratzbot/internal/strategy"
)

type PlayCmd struct {
	Config   string `short:"c" default:"dobratzbot.hcl" help:"Path to HCL configuration file"`
	Server   string `help:"WebSocket server URL (overrides config)"`
	Game     string `help:"Game to join (overrides config)"`
	Name     string `help:"Bot name (overrides config)"`
	Seed     int64  `help:"Random seed, 0 picks one"`
	Count    int    `default:"1" help:"Number of bot instances to run"`
	LogLevel string `help:"Log level (debug|info|warn|error)"`
	LogJSON  bool   `help:"Output JSON logs instead of console format"`
}

// settings resolves the configuration: file, then environment, then flags
func (c *PlayCmd) settings() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if c.Server != "" {
		cfg.Server.URL = c.Server
	}
	if c.Game != "" {
		cfg.Server.Game = c.Game
	}
	if c.Name != "" {
		cfg.Bot.Name = c.Name
	}
	if c.Seed != 0 {
		cfg.Bot.Seed = c.Seed
	}
	if c.LogLevel != "" {
		cfg.Bot.LogLevel = c.LogLevel
	}
	if c.LogJSON {
		cfg.Bot.LogJSON = true
	}
	if c.Count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	return cfg, nil
}

func (c *PlayCmd) Run() error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, cfg.Bot.LogLevel, cfg.Bot.LogJSON)
	if err != nil {
		return err
	}
	table, err := cfg.Table()
	if err != nil {
		return err
	}

	seed := cfg.Bot.Seed
	if seed == 0 {
		seed = randutil.NewSeed()
	}
	logger.Info("Starting",
		"server", cfg.Server.URL,
		"game", cfg.Server.Game,
		"bots", c.Count,
		"seed", seed,
		"tableEntries", table.Len())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	for i := range c.Count {
		name := cfg.Bot.Name
		if c.Count > 1 {
			name = fmt.Sprintf("%s-%d", name, i+1)
		}
		botLogger := logger.With("bot", name)
		player := strategy.NewPlayer(table, randutil.New(randutil.Derive(seed, i)), botLogger)
		b := client.New(name, bot.NewHandler(player, botLogger), logger)

		g.Go(func() error {
			return client.RunWithRetry(ctx, b, cfg.Server.URL, cfg.Server.Game,
				cfg.Server.ReconnectAttempts, cfg.ReconnectDelay())
		})
	}

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		logger.Info("Shutting down")
		return nil
	}
	return err
}
