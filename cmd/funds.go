package cmd

import (
	"context"
	"flag"

	"github.com/anupamd/kitestat/renderer"
	"github.com/google/subcommands"
)

type fundsCmd struct {
	reportOptions
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "available cash and utilised margin only" }
func (*fundsCmd) Usage() string {
	return `kitestat funds [-debug]

  Renders only the equity funds section.
`
}

func (p *fundsCmd) SetFlags(f *flag.FlagSet) { p.reportOptions.SetFlags(f) }

func (p *fundsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runView(ctx, &p.reportOptions, renderer.ModeFunds)
}
