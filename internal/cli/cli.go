package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/conveyor/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Mode selects what the program does with the input.
type Mode int

const (
	// ModeRoute routes every bag and prints one line per bag.
	ModeRoute Mode = iota
	// ModeCheck prints parse problems and network diagnostics only.
	ModeCheck
	// ModeServe routes on demand over HTTP.
	ModeServe
	// ModeGenerate writes a synthetic manifest instead of reading one.
	ModeGenerate
)

// Topologies lists the generator names accepted by -gen.
var Topologies = []string{"path", "cycle", "star", "grid", "complete", "random"}

// Invocation is the parsed command line.
type Invocation struct {
	Config config.Config
	Mode   Mode

	// Generator settings, used with ModeGenerate.
	Topology string
	Size     int
	Seed     int64
}

// Parse processes command-line arguments. It returns the Invocation, a
// boolean indicating if the program should exit cleanly (help was shown),
// or an ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	flagSet := flag.NewFlagSet("conveyor", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
conveyor - cheapest-cost baggage routing over a conveyor network.

Usage:
  conveyor [options] [INPUT]

Arguments:
  INPUT
    Manifest file with conveyor, departures and bags sections.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	inputFlag := flagSet.String("input", "", "Path to the manifest file.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	claimFlag := flagSet.String("claim", "BaggageClaim", "Junction that arriving bags are routed to.")
	workersFlag := flagSet.Int("workers", 1, "Number of bags routed concurrently.")
	cacheSizeFlag := flagSet.Int("cache-size", 256, "Number of per-source engine runs kept for reuse.")
	serveFlag := flagSet.String("serve", "", "Serve the routing API on this address instead of printing routes.")
	checkFlag := flagSet.Bool("check", false, "Report input problems and network statistics, then exit.")
	genFlag := flagSet.String("gen", "", "Write a synthetic manifest. Options: "+strings.Join(Topologies, ", ")+".")
	sizeFlag := flagSet.Int("size", 8, "Junction count (or grid side) for -gen.")
	seedFlag := flagSet.Int64("seed", 1, "Random seed for -gen.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	// Only flags given on the command line override the file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *inputFlag
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "claim":
			cfg.ClaimJunction = *claimFlag
		case "workers":
			cfg.Workers = *workersFlag
		case "cache-size":
			cfg.CacheSize = *cacheSizeFlag
		case "serve":
			cfg.Listen = *serveFlag
		}
	})
	if flagSet.NArg() > 0 {
		cfg.Input = flagSet.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	inv := &Invocation{Config: cfg, Mode: ModeRoute, Topology: *genFlag, Size: *sizeFlag, Seed: *seedFlag}
	switch {
	case *genFlag != "":
		if !validTopology(*genFlag) {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid -gen %q: must be one of %s", *genFlag, strings.Join(Topologies, ", "))}
		}
		inv.Mode = ModeGenerate
		return inv, false, nil
	case *checkFlag:
		inv.Mode = ModeCheck
	case cfg.Listen != "":
		inv.Mode = ModeServe
	}

	if cfg.Input == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	return inv, false, nil
}

func validTopology(name string) bool {
	for _, t := range Topologies {
		if t == name {
			return true
		}
	}

	return false
}
