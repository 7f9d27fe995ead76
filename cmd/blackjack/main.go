package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`

	Play     PlayCmd     `cmd:"" help:"Play an interactive table session"`
	Simulate SimulateCmd `cmd:"" help:"Auto-play sessions with the strategy advisor"`
	Edge     EdgeCmd     `cmd:"" help:"Estimate the house edge for a rule configuration"`
	Ror      RorCmd      `cmd:"" help:"Estimate the risk of ruin for a bankroll"`
}

func main() {
	// Optional .env for BLACKJACK_* defaults; absence is fine.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Blackjack table engine with a card-counting advisor"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(setupLogger(cli.Debug))
	ctx.FatalIfErrorf(err)
}

// setupLogger configures structured logging to stderr so TUI output
// on stdout stays clean.
func setupLogger(debug bool) *log.Logger {
	logger := log.New(os.Stderr)
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
