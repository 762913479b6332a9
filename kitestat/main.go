package main

import (
	"context"
	"flag"
	"os"
	"path"
	"strings"

	"github.com/anupamd/kitestat/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	// no subcommand means the simple status view
	if len(os.Args) == 1 || strings.HasPrefix(os.Args[1], "-") {
		os.Args = append([]string{os.Args[0], "status"}, os.Args[1:]...)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion; it only acts when invoked by
// the shell's completion machinery.
func completion() {
	reportFlags := map[string]complete.Predictor{
		"sort":   predict.Set{"symbol", "quantity", "ltp", "invested", "value", "pnl", "pnl_pct", "day_change"},
		"order":  predict.Set{"asc", "desc"},
		"debug":  predict.Nothing,
		"export": predict.Nothing,
	}
	complete.Complete("kitestat", &complete.Command{
		Sub: map[string]*complete.Command{
			"status":    {Flags: reportFlags},
			"detailed":  {Flags: reportFlags},
			"holdings":  {Flags: reportFlags},
			"positions": {Flags: reportFlags},
			"funds":     {Flags: reportFlags},
			"login":     {},
			"topic":     {},
		},
	})
}
