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

type detailedCmd struct {
	reportOptions
}

func (*detailedCmd) Name() string     { return "detailed" }
func (*detailedCmd) Synopsis() string { return "full table view: funds, holdings and positions" }
func (*detailedCmd) Usage() string {
	return `kitestat detailed [-sort <field>] [-order asc|desc] [-debug] [-export]

  Renders every section as a table: funds, the holdings book with its
  totals, and the day and net position books with theirs.
`
}

func (p *detailedCmd) SetFlags(f *flag.FlagSet) { p.reportOptions.SetFlags(f) }

func (p *detailedCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runView(ctx, &p.reportOptions, renderer.ModeAll)
}

// runView is the shared body of the detailed, holdings, positions and
// funds commands: fetch, sort, render one mode, export.
func runView(ctx context.Context, opts *reportOptions, mode renderer.Mode) subcommands.ExitStatus {
	cfg := kitestat.FromEnv()
	opts.apply(&cfg)

	client, err := newClient(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return subcommands.ExitFailure
	}

	return retryOnce(func() error {
		report := fetchReport(ctx, client, cfg)
		kitestat.SortHoldings(report.Holdings, cfg.SortBy, cfg.SortOrder)
		printMarkdown(renderer.DetailedMarkdown(report, mode))
		return exportIfRequested(report, cfg)
	})
}
