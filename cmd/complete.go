package cmd

import (
	"flag"

	"github.com/etnz/premiumbonds/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the pbs command line for shell completion.
func Completion(commands []subcommands.Command) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		sub := &complete.Command{Flags: flagPredictors(f)}
		if c.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

// flagPredictors predicts flag values: files for the prize table, nothing for booleans.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	res := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		switch {
		case fl.Name == "tiers":
			res[fl.Name] = predict.Files("*")
		case fl.Name == "config":
			res[fl.Name] = predict.Files("*.y*ml")
		case isBool(fl):
			res[fl.Name] = predict.Nothing
		default:
			res[fl.Name] = predict.Something
		}
	})
	return res
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
