// Package cmd implements the kitestat CLI application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anupamd/kitestat"
	"github.com/anupamd/kitestat/kite"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

// Commands lists every subcommand. A main package registers them all
// and Executes the user-selected one.
var Commands = []subcommands.Command{
	&statusCmd{},
	&detailedCmd{},
	&holdingsCmd{},
	&positionsCmd{},
	&fundsCmd{},
	&loginCmd{},
	&topicCmd{},
}

// retryDelay is the pause before the single retry of a failed run. It
// is a variable so tests can shorten it.
var retryDelay = time.Second

// exitRetryExhausted is returned when a run failed twice in a row. It
// is distinct from subcommands.ExitFailure (fatal preconditions) so
// wrappers can tell the two apart.
const exitRetryExhausted = subcommands.ExitStatus(2)

// reportOptions are the flags shared by every report-producing command.
type reportOptions struct {
	sortBy string
	order  string
	debug  bool
	export bool
}

func (o *reportOptions) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.sortBy, "sort", string(kitestat.SortDayChange), "sort holdings by field (symbol, quantity, ltp, invested, value, pnl, pnl_pct, day_change)")
	f.StringVar(&o.order, "order", string(kitestat.Descending), "sort order (asc, desc)")
	f.BoolVar(&o.debug, "debug", false, "dump the raw API payloads to stderr before aggregation")
	f.BoolVar(&o.export, "export", false, "export CSV snapshots of the report")
}

// apply merges the flags into the startup config.
func (o *reportOptions) apply(cfg *kitestat.Config) {
	cfg.SortBy = kitestat.SortField(o.sortBy)
	cfg.SortOrder = kitestat.SortOrder(o.order)
	cfg.Debug = o.debug
	cfg.Export = o.export
}

// newClient builds an authenticated Kite client from the config,
// generating a session when only a request token is available. Missing
// credentials are fatal: they will not resolve by retrying.
func newClient(ctx context.Context, cfg kitestat.Config) (*kite.Client, error) {
	if err := cfg.CheckCredentials(); err != nil {
		return nil, err
	}

	client := kite.New(cfg.APIKey)
	if cfg.AccessToken != "" {
		client.SetAccessToken(cfg.AccessToken)
		return client, nil
	}

	token, err := client.GenerateSession(ctx, cfg.RequestToken, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	log.Printf("access token fetched, you may save it for reuse: KITE_ACCESS_TOKEN=%s", token)
	return client, nil
}

// fetchReport runs the three account fetches concurrently and
// aggregates them. The calls share no state and are only combined after
// all complete. A failed fetch is logged and degrades to an empty set,
// so the report always renders.
func fetchReport(ctx context.Context, client *kite.Client, cfg kitestat.Config) *kitestat.Report {
	if cfg.Debug {
		client.SetDebug(os.Stderr)
	}

	var (
		rawHoldings    []map[string]any
		rawDay, rawNet []map[string]any
		rawMargins     map[string]any
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if rawHoldings, err = client.Holdings(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: holdings: %v\n", err)
			rawHoldings = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if rawDay, rawNet, err = client.Positions(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: positions: %v\n", err)
			rawDay, rawNet = nil, nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if rawMargins, err = client.Margins(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: margins: %v\n", err)
			rawMargins = nil
		}
		return nil
	})
	// errors are absorbed above, Wait only synchronizes
	_ = g.Wait()

	holdings := make([]kitestat.Holding, 0, len(rawHoldings))
	for _, raw := range rawHoldings {
		holdings = append(holdings, kitestat.NewHolding(raw))
	}
	day := make([]kitestat.Position, 0, len(rawDay))
	for _, raw := range rawDay {
		day = append(day, kitestat.NewPosition(raw))
	}
	net := make([]kitestat.Position, 0, len(rawNet))
	for _, raw := range rawNet {
		net = append(net, kitestat.NewPosition(raw))
	}

	return kitestat.NewReport(holdings, day, net, kitestat.NewFunds(rawMargins))
}

// exportIfRequested writes CSV snapshots when the export flag is set.
func exportIfRequested(r *kitestat.Report, cfg kitestat.Config) error {
	if !cfg.Export {
		return nil
	}
	paths, err := r.ExportSnapshots(cfg.SnapshotDir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(os.Stderr, "snapshot saved: %s\n", p)
	}
	return nil
}

// retryOnce runs a full report generation, retrying one time after a
// fixed delay when it fails. A second consecutive failure is fatal with
// a distinct exit code.
func retryOnce(run func() error) subcommands.ExitStatus {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}
		if err = run(); err == nil {
			return subcommands.ExitSuccess
		}
	}
	fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
	return exitRetryExhausted
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(source string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(110))
	if err != nil {
		fmt.Print(source)
		return
	}
	out, err := r.Render(source)
	if err != nil {
		fmt.Print(source)
		return
	}
	fmt.Print(out)
}
