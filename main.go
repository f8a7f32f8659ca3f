package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/utils"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks a failure caused by how the command was invoked
type usageError struct {
	error
}

func (e usageError) Unwrap() error { return e.error }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "gol: ", 0)

	config, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		logger.Println(err)
		var usage usageError
		if errors.As(err, &usage) {
			return exitUsage
		}
		return exitError
	}

	if err = playGame(config, stdout, logger); err != nil {
		logger.Printf("%v", err)
		return exitError
	}
	return exitOK
}

// parseArgs builds the run configuration: defaults, then the config file, then flags, then
// the positional <grid-file> <iterations> arguments
func parseArgs(args []string, stderr io.Writer) (utils.Config, error) {
	config := utils.DefaultConfig()

	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: gol [flags] [grid-file] [iterations]")
		fmt.Fprintln(fs.Output(), "Eg gol testdata/tc_3_blinker 2")
		fs.PrintDefaults()
	}

	var (
		configFile    = fs.String("config", "", "JSON or YAML configuration `file`")
		encoding      = fs.String("encoding", config.Encoding, "grid encoding: dense or packed")
		render        = fs.String("render", config.Render, "grid rendering: digits or blocks")
		quiet         = fs.Bool("quiet", config.Quiet, "only print the final banner")
		compare       = fs.Bool("compare", config.Compare, "run both encodings and check they agree")
		output        = fs.String("output", config.OutputFile, "write the final grid to `file`")
		pattern       = fs.String("pattern", config.Pattern, "seed when no grid file is given: random, showcase or mixed")
		randomSize    = fs.Int("random-size", config.RandomSize, "grid size when no grid file is given")
		randomDensity = fs.Float64("density", config.RandomDensity, "live cell probability for a random grid")
		seed          = fs.Int64("seed", config.Seed, "random grid seed")
		stagnation    = fs.Bool("detect-stagnation", config.DetectStagnation, "log when the pattern settles")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config, err
		}
		return config, usageError{err}
	}

	if *configFile != "" {
		loaded, err := utils.LoadConfig(*configFile)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "encoding":
			config.Encoding = *encoding
		case "render":
			config.Render = *render
		case "quiet":
			config.Quiet = *quiet
		case "compare":
			config.Compare = *compare
		case "output":
			config.OutputFile = *output
		case "pattern":
			config.Pattern = *pattern
		case "random-size":
			config.RandomSize = *randomSize
		case "density":
			config.RandomDensity = *randomDensity
		case "seed":
			config.Seed = *seed
		case "detect-stagnation":
			config.DetectStagnation = *stagnation
		}
	})

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 2:
		n, err := strconv.ParseUint(rest[1], 10, 0)
		if err != nil {
			fs.Usage()
			return config, usageError{errors.Errorf("iterations %q must be a non-negative integer", rest[1])}
		}
		config.Iterations = uint(n)
		fallthrough
	case 1:
		config.InputFile = rest[0]
	default:
		fs.Usage()
		return config, usageError{errors.Errorf("expected at most 2 arguments, got %d", len(rest))}
	}

	if err := config.Validate(); err != nil {
		return config, usageError{err}
	}
	return config, nil
}
