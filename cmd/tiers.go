package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/premiumbonds"
	"github.com/etnz/premiumbonds/renderer"
	"github.com/google/subcommands"
)

// tiersCmd holds the flags for the 'tiers' subcommand.
type tiersCmd struct {
	tiers     string
	tiersPath string
	currency  string
	plain     bool
}

func (*tiersCmd) Name() string     { return "tiers" }
func (*tiersCmd) Synopsis() string { return "display a prize table and its monthly odds" }
func (*tiersCmd) Usage() string {
	return `pbs tiers [-tiers <file|url>] [-tiers-path <jsonpath>]

  Displays the prize tiers of a table with the probability for one bond to
  win each of them in a monthly draw.
`
}

func (c *tiersCmd) SetFlags(f *flag.FlagSet) {
	cfg := defaults()
	f.StringVar(&c.tiers, "tiers", cfg.Tiers, "Prize table: a .json or .yaml file, or an URL. Defaults to the built-in table.")
	f.StringVar(&c.tiersPath, "tiers-path", cfg.TiersPath, "JSONPath of the prize table in a JSON document.")
	f.StringVar(&c.currency, "currency", cfg.Currency, "Currency of prizes.")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown.")
}

func (c *tiersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := settings(); err != nil {
		return failed(err)
	}
	table, err := premiumbonds.LoadTable(c.tiers, c.tiersPath)
	if err != nil {
		return failed(err)
	}
	p, err := table.Probabilities()
	if err != nil {
		return failed(err)
	}
	present(os.Stdout, renderer.RenderTiers(renderer.NewTiers(table, p, c.currency)), c.plain)
	return subcommands.ExitSuccess
}
