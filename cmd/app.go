// Package cmd implements the CLI application to estimate the return of a bond holding.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/premiumbonds"
	"github.com/etnz/premiumbonds/config"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// Commands lists the subcommands of pbs.
// A main package will register them, and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&simulateCmd{},
	&tiersCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file. Defaults to pbs.yaml in the current directory or in $HOME/.config/pbs.")
var Verbose = flag.Bool("v", false, "Print debug logs on stderr.")

// settings loads the configuration once, on first use, after the global flags are parsed.
var settings = sync.OnceValues(func() (*config.Config, error) {
	return config.Load(config.Options{File: *configFile})
})

// defaults returns the configuration to use as flag defaults. A configuration
// error is reported by failed, at execution time.
func defaults() *config.Config {
	cfg, err := settings()
	if err != nil {
		return config.Default()
	}
	return cfg
}

// SetupLogging configures the logger according to the -v flag.
func SetupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if *Verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// failed prints err and returns the matching exit status: invalid input is a
// usage error, anything else a failure.
func failed(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, premiumbonds.ErrInvalidInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	log.Debugf("markdown rendering failed, printing raw markdown: %v", err)
	fmt.Print(md)
}

// present writes md to w, raw when plain is set, rendered for the terminal otherwise.
func present(w io.Writer, md string, plain bool) {
	if plain || w != os.Stdout {
		fmt.Fprint(w, md)
		return
	}
	printMarkdown(md)
}
