package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tdobratz/dobratzbot/internal/config"
)

type ChartCmd struct {
	Config  string `short:"c" default:"dobratzbot.hcl" help:"Path to HCL configuration file"`
	NoColor bool   `help:"Disable colored output"`
}

func (c *ChartCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *ChartCmd) run(w io.Writer) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	table, err := cfg.Table()
	if err != nil {
		return err
	}

	r := lipgloss.NewRenderer(w)
	if c.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	cell := r.NewStyle().Width(5)
	raise := cell.Bold(true).Foreground(lipgloss.Color("10"))
	muted := cell.Foreground(lipgloss.Color("8"))
	header := r.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))

	grid := table.Grid()
	for _, row := range grid {
		var line strings.Builder
		for _, sq := range row {
			if sq.Raises {
				line.WriteString(raise.Render(sq.Notation))
			} else {
				line.WriteString(muted.Render(sq.Notation))
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}

	fmt.Fprintf(w, "\n%s\n", header.Render("raising hands"))
	for i, e := range table.Entries() {
		fmt.Fprintf(w, "%2d. %-4s +%d up to %.0f%% of stack\n",
			i+1, e.Notation(), e.Increment, e.MaxCommitment*100)
	}
	return nil
}
