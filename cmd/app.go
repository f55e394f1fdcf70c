// Package cmd implements the CLI application to manage a ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Commands lists all the subcommands, in help order.
var Commands = []subcommands.Command{
	&depositCmd{},
	&paymentCmd{},
	&ledgerCmd{},
	&menuCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")

	for _, cmd := range Commands {
		c.Register(cmd, "ledger")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a fintrack.yaml configuration file")
var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (overrides configuration, default "+config.DefaultLedgerFile+")")

// Verbose enables debug logging.
var Verbose = flag.Bool("v", false, "Verbose logging")

// app is the configuration in use, set by Setup.
var app = &config.Config{LedgerFile: config.DefaultLedgerFile}

// standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	now              = time.Now
)

// Setup loads the configuration, applies command line overrides and
// configures the global logger. It must be called after flag parsing.
func Setup() error {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	cfg.Verbose = cfg.Verbose || *Verbose
	app = cfg

	log.Logger = newLogger(stderr, app.Verbose)
	log.Debug().Str("config", app.Source).Str("ledger", app.LedgerFile).Msg("configuration loaded")
	return nil
}

// newLogger returns a human friendly logger writing to w.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
}

// OpenStore returns the store of the configured ledger file.
func OpenStore() *fintrack.Store {
	return fintrack.NewStore(app.LedgerFile, log.Logger)
}

// printMarkdown renders md for the terminal. It falls back to the raw markdown
// if it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		log.Debug().Err(err).Msg("cannot create markdown renderer")
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("cannot render markdown")
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
