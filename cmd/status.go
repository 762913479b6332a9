package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/anupamd/kitestat"
	"github.com/anupamd/kitestat/renderer"
	"github.com/google/subcommands"
)

type statusCmd struct {
	reportOptions
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "one-screen portfolio summary (the default)" }
func (*statusCmd) Usage() string {
	return `kitestat status [-debug] [-export]

  Fetches holdings, positions and margins and prints a single-screen
  summary: portfolio value, P&L, day change, top movers and funds.
`
}

func (p *statusCmd) SetFlags(f *flag.FlagSet) { p.reportOptions.SetFlags(f) }

func (p *statusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := kitestat.FromEnv()
	p.apply(&cfg)

	client, err := newClient(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return subcommands.ExitFailure
	}

	return retryOnce(func() error {
		report := fetchReport(ctx, client, cfg)
		printMarkdown(renderer.SummaryMarkdown(report))
		return exportIfRequested(report, cfg)
	})
}
