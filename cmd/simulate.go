package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/etnz/premiumbonds"
	"github.com/etnz/premiumbonds/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	holding   int64
	trials    int
	seed      uint64
	shards    int
	tiers     string
	tiersPath string
	currency  string
	bins      int
	histogram bool
	full      bool
	plain     bool

	prompter HoldingPrompter
	out      io.Writer
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "estimate the annual return of a holding" }
func (*simulateCmd) Usage() string {
	return `pbs simulate [-holding <n>] [-trials <n>] [-seed <n>] [-shards <n>] [-tiers <file|url>] [-histogram]

  Simulates years of monthly prize draws for a holding and prints the median
  annual winnings, the median rate and the 80% interval.
  The holding is asked for when -holding is not set.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	cfg := defaults()
	f.Int64Var(&c.holding, "holding", -1, "Number of bonds held, one currency unit each. Asked for when not set.")
	f.IntVar(&c.trials, "trials", cfg.Trials, "Number of simulated years.")
	f.Uint64Var(&c.seed, "seed", cfg.Seed, "Random seed, 0 for a random one.")
	f.IntVar(&c.shards, "shards", cfg.Shards, "Number of blocks of years simulated concurrently.")
	f.StringVar(&c.tiers, "tiers", cfg.Tiers, "Prize table: a .json or .yaml file, or an URL. Defaults to the built-in table.")
	f.StringVar(&c.tiersPath, "tiers-path", cfg.TiersPath, "JSONPath of the prize table in a JSON document.")
	f.StringVar(&c.currency, "currency", cfg.Currency, "Currency of prizes and holding.")
	f.IntVar(&c.bins, "bins", cfg.Bins, "Number of histogram bins.")
	f.BoolVar(&c.histogram, "histogram", false, "Draw the distribution of annual winnings.")
	f.BoolVar(&c.full, "full", false, "Do not leave winnings above the holding out of the histogram.")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown.")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := settings(); err != nil {
		return failed(err)
	}
	if c.holding < 0 && !isFlagSet(f, "holding") {
		c.prompter = &linePrompter{in: os.Stdin, out: os.Stderr}
	}
	c.out = os.Stdout
	if err := c.run(); err != nil {
		return failed(err)
	}
	return subcommands.ExitSuccess
}

// run simulates and prints the report. Nothing is printed when it fails.
func (c *simulateCmd) run() error {
	if c.prompter != nil {
		holding, err := c.prompter.PromptHolding()
		if err != nil {
			return fmt.Errorf("%w: %w", err, premiumbonds.ErrInvalidInput)
		}
		c.holding = holding
	}

	table, err := premiumbonds.LoadTable(c.tiers, c.tiersPath)
	if err != nil {
		return err
	}
	p, err := table.Probabilities()
	if err != nil {
		return err
	}

	seed := c.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	runID := uuid.NewString()
	logger := log.WithFields(log.Fields{"run": runID, "seed": seed, "shards": c.shards, "trials": c.trials, "holding": c.holding})

	start := time.Now()
	sample, err := premiumbonds.NewSimulator(seed, c.shards).AnnualWinnings(c.holding, p, table.Tiers.Values(), c.trials)
	if err != nil {
		return err
	}
	logger.WithField("elapsed", time.Since(start)).Debug("simulation done")

	summary, err := premiumbonds.Summarize(sample, c.holding, c.currency)
	if err != nil {
		return err
	}

	bins := 0
	if c.histogram {
		bins = c.bins
	}
	report := renderer.NewReport(summary, sample, renderer.ReportOptions{
		RunID:    runID,
		Table:    table.Name,
		Seed:     seed,
		Shards:   max(1, min(c.shards, c.trials)),
		Bins:     bins,
		Truncate: !c.full,
	})
	md := renderer.RenderReport(report, renderer.ReportRenderOptions{SkipHistogram: !c.histogram})
	present(c.out, md, c.plain)
	return nil
}

// isFlagSet reports whether the flag name was set on the command line.
func isFlagSet(f *flag.FlagSet, name string) (set bool) {
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}
