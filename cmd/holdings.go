package cmd

import (
	"context"
	"flag"

	"github.com/anupamd/kitestat/renderer"
	"github.com/google/subcommands"
)

type holdingsCmd struct {
	reportOptions
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "holdings table only" }
func (*holdingsCmd) Usage() string {
	return `kitestat holdings [-sort <field>] [-order asc|desc] [-debug] [-export]

  Renders only the holdings book and its totals.
`
}

func (p *holdingsCmd) SetFlags(f *flag.FlagSet) { p.reportOptions.SetFlags(f) }

func (p *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runView(ctx, &p.reportOptions, renderer.ModeHoldings)
}
