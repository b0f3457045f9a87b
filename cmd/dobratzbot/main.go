package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Connect to a poker server and play"`
	Decide   DecideCmd        `cmd:"" help:"Show the decision for a single spot"`
	Chart    ChartCmd         `cmd:"" help:"Print the preflop raising chart"`
	Coverage CoverageCmd      `cmd:"" help:"Measure how often random hands hit the raising table"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dobratzbot"),
		kong.Description("Table-driven preflop raiser with a random postflop game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
