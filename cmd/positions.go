package cmd

import (
	"context"
	"flag"

	"github.com/anupamd/kitestat/renderer"
	"github.com/google/subcommands"
)

type positionsCmd struct {
	reportOptions
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "day and net position tables only" }
func (*positionsCmd) Usage() string {
	return `kitestat positions [-debug] [-export]

  Renders the day and the net position books, each with its own M2M
  total.
`
}

func (p *positionsCmd) SetFlags(f *flag.FlagSet) { p.reportOptions.SetFlags(f) }

func (p *positionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runView(ctx, &p.reportOptions, renderer.ModePositions)
}
