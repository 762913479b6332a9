package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/anupamd/kitestat"
	"github.com/anupamd/kitestat/kite"
	"github.com/google/subcommands"
)

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "print the login URL or exchange a request token" }
func (*loginCmd) Usage() string {
	return `kitestat login

  With only KITE_API_KEY set, prints the Kite login URL. Completing the
  login in a browser yields a request token; set it as
  KITE_REQUEST_TOKEN and run login again to exchange it for an access
  token.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := kitestat.FromEnv()
	if cfg.APIKey == "" {
		fmt.Fprintln(os.Stderr, "ERROR: KITE_API_KEY is not set")
		return subcommands.ExitFailure
	}

	client := kite.New(cfg.APIKey)
	if cfg.RequestToken == "" || cfg.APISecret == "" {
		fmt.Println("Open the login URL, then set KITE_REQUEST_TOKEN and KITE_API_SECRET:")
		fmt.Println(client.LoginURL())
		return subcommands.ExitSuccess
	}

	token, err := client.GenerateSession(ctx, cfg.RequestToken, cfg.APISecret)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Access token fetched. Save it for reuse:\nKITE_ACCESS_TOKEN=%s\n", token)
	return subcommands.ExitSuccess
}
