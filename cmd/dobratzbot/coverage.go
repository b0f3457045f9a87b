package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"

	"github.com/tdobratz/dobratzbot/internal/config"
	"github.com/tdobratz/dobratzbot/internal/fileutil"
	"github.com/tdobratz/dobratzbot/internal/strategy"
)

type CoverageCmd struct {
	Hands   int    `short:"n" default:"100000" help:"Number of random hands to deal"`
	Workers int    `short:"w" default:"0" help:"Worker goroutines (0 = GOMAXPROCS)"`
	Seed    int64  `default:"1" help:"Random seed"`
	Config  string `short:"c" default:"dobratzbot.hcl" help:"Path to HCL configuration file"`
	Out     string `short:"o" help:"Also write the report as JSON to this file"`
}

type coverageRow struct {
	Hand    string  `json:"hand"`
	Hits    int     `json:"hits"`
	Percent float64 `json:"percent"`
}

type coverageJSON struct {
	Seed      int64         `json:"seed"`
	Hands     int           `json:"hands"`
	Matched   int           `json:"matched"`
	Unmatched int           `json:"unmatched"`
	Entries   []coverageRow `json:"entries"`
}

func (c *CoverageCmd) Run() error {
	return c.run(context.Background(), os.Stdout)
}

func (c *CoverageCmd) run(ctx context.Context, w io.Writer) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	table, err := cfg.Table()
	if err != nil {
		return err
	}

	report, err := strategy.Coverage(ctx, table, strategy.CoverageOptions{
		Hands:   c.Hands,
		Workers: c.Workers,
		Seed:    c.Seed,
	})
	if err != nil {
		return fmt.Errorf("coverage: %w", err)
	}

	pct := func(n int) float64 {
		return float64(n) * 100 / float64(report.Hands)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "hand\thits\tpercent\t")
	for i, e := range table.Entries() {
		fmt.Fprintf(tw, "%s\t%d\t%.2f%%\t\n", e.Notation(), report.Hits[i], pct(report.Hits[i]))
	}
	fmt.Fprintf(tw, "raise\t%d\t%.2f%%\t\n", report.Matched(), pct(report.Matched()))
	fmt.Fprintf(tw, "other\t%d\t%.2f%%\t\n", report.Unmatched, pct(report.Unmatched))
	if err := tw.Flush(); err != nil {
		return err
	}

	if c.Out == "" {
		return nil
	}
	out := coverageJSON{
		Seed:      c.Seed,
		Hands:     report.Hands,
		Matched:   report.Matched(),
		Unmatched: report.Unmatched,
	}
	for i, e := range table.Entries() {
		out.Entries = append(out.Entries, coverageRow{Hand: e.Notation(), Hits: report.Hits[i], Percent: pct(report.Hits[i])})
	}
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return fileutil.WriteFileAtomic(c.Out, append(data, '\n'), 0o644)
}
