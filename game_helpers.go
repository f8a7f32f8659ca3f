package main

import (
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/gridfile"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

// errEncodingsDisagree is returned by compare mode when the two encodings end on different grids
var errEncodingsDisagree = errors.New("dense and packed encodings disagree")

// runResult is what a single simulation run hands back to the driver
type runResult struct {
	final gridfile.Layout
	view  model.View
	stats *utils.Stats
}

// playGame loads the initial grid, runs it under the configured encoding and reports the outcome
func playGame(config utils.Config, stdout io.Writer, logger *log.Logger) error {
	layout, err := initialLayout(config)
	if err != nil {
		return err
	}

	kind, err := config.Kind()
	if err != nil {
		return err
	}
	renderer, err := model.NewRenderer(config.Render)
	if err != nil {
		return err
	}

	if !config.Quiet {
		displayGameInfo(stdout, config, kind, layout)
	}

	var result runResult
	if config.Compare {
		result, err = compareEncodings(config, layout, logger)
	} else {
		out := stdout
		if config.Quiet {
			out = io.Discard
		}
		result, err = runKind(kind, config, layout, renderer, out, logger)
	}
	if err != nil {
		return err
	}

	if config.OutputFile != "" {
		if err = gridfile.Save(config.OutputFile, result.final); err != nil {
			return err
		}
		logger.Printf("final grid written to %s", config.OutputFile)
	}

	displayGameStatus(stdout, config, result.stats)
	fmt.Fprint(stdout, "GAME OVER\n")
	return nil
}

// initialLayout reads the input grid file, or seeds a grid from the configured pattern when none is given
func initialLayout(config utils.Config) (gridfile.Layout, error) {
	if config.InputFile != "" {
		return gridfile.Load(config.InputFile)
	}

	pattern, err := model.ParsePattern(config.Pattern)
	if err != nil {
		return gridfile.Layout{}, err
	}

	var (
		enc  = model.Dense{}
		size = config.RandomSize
		buf  = enc.Alloc(size)
	)
	if err = model.NewSeeder(enc, buf, size).Seed(pattern, config.RandomDensity, config.Seed); err != nil {
		return gridfile.Layout{}, err
	}
	return gridfile.FromView(model.Bind(enc, buf, size)), nil
}

// runKind dispatches to the encoding selected for this process run
func runKind(
	kind model.Kind,
	config utils.Config,
	layout gridfile.Layout,
	renderer model.Renderer,
	out io.Writer,
	logger *log.Logger,
) (runResult, error) {
	switch kind {
	case model.KindDense:
		return runEncoding[[]uint8](model.Dense{}, config, layout, renderer, out, logger)
	case model.KindPacked:
		return runEncoding[[]uint16](model.Packed{}, config, layout, renderer, out, logger)
	}
	return runResult{}, errors.Wrapf(model.ErrUnknownEncoding, "[runKind] %v", kind)
}

// runEncoding plays the full game for one encoding, rendering every round to out
func runEncoding[B any](
	enc model.Encoding[B],
	config utils.Config,
	layout gridfile.Layout,
	renderer model.Renderer,
	out io.Writer,
	logger *log.Logger,
) (runResult, error) {
	buf, err := gridfile.Fill(enc, layout)
	if err != nil {
		return runResult{}, err
	}

	var (
		size    = layout.Size
		stats   = utils.NewStats()
		sim     = model.NewSimulation(enc, model.NewBufferPool(enc))
		printer = &model.RenderReporter{Renderer: renderer, W: out}
		watcher = newStagnationWatcher(sim.Encoding().Kind(), config.DetectStagnation, logger)
	)
	if err = renderer.Render(out, 0, model.Bind(enc, buf, size)); err != nil {
		return runResult{}, err
	}
	watcher.Report(0, model.Bind(enc, buf, size))

	final := sim.Run(buf, size, config.Iterations, model.Reporters(
		printer,
		watcher,
		model.ReporterFunc(func(round int, v model.View) {
			stats.Update(round, model.CountLiving(v))
		}),
	))
	if printer.Err != nil {
		return runResult{}, printer.Err
	}

	view := model.Bind(enc, final, size)
	if config.Iterations == 0 {
		stats.Update(0, model.CountLiving(view))
	}
	return runResult{final: gridfile.FromView(view), view: view, stats: stats}, nil
}

// compareEncodings runs the same grid under both encodings concurrently and checks they agree
func compareEncodings(config utils.Config, layout gridfile.Layout, logger *log.Logger) (runResult, error) {
	if err := (model.Packed{}).Validate(layout.Size); err != nil {
		return runResult{}, errors.Wrap(err, "[compareEncodings] grid does not fit the packed encoding")
	}

	var (
		eg            errgroup.Group
		dense, packed runResult
	)
	renderer := model.DigitRenderer{}
	quietConfig := config
	quietConfig.DetectStagnation = false

	eg.Go(func() (err error) {
		dense, err = runEncoding[[]uint8](model.Dense{}, quietConfig, layout, renderer, io.Discard, logger)
		return errors.Wrap(err, "[compareEncodings] dense")
	})
	eg.Go(func() (err error) {
		packed, err = runEncoding[[]uint16](model.Packed{}, quietConfig, layout, renderer, io.Discard, logger)
		return errors.Wrap(err, "[compareEncodings] packed")
	})
	if err := eg.Wait(); err != nil {
		return runResult{}, err
	}

	if !model.Equal(dense.view, packed.view) {
		return runResult{}, errors.Wrapf(errEncodingsDisagree, "[compareEncodings] after %d iterations", config.Iterations)
	}
	logger.Printf("dense and packed encodings agree after %d iterations", config.Iterations)
	return dense, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, kind model.Kind, layout gridfile.Layout) {
	fmt.Fprintln(w, "Welcome to the Game of Life!")
	source := config.InputFile
	if source == "" {
		source = fmt.Sprintf("%s pattern (density %.2f, seed %d)", config.Pattern, config.RandomDensity, config.Seed)
	}
	mode := kind.String()
	if config.Compare {
		mode = "dense+packed (compare)"
	}
	fmt.Fprintf(w, "Grid: %dx%d from %s | Encoding: %s\n", layout.Size, layout.Size, source, mode)
	fmt.Fprintf(w, "Will run game for %d iterations.\n\n", config.Iterations)
}

// displayGameStatus shows the summary of a finished run
func displayGameStatus(w io.Writer, config utils.Config, stats *utils.Stats) {
	if config.Quiet || stats == nil {
		return
	}
	fmt.Fprintf(w, "Generations: %d | Living: %d | Avg Pop: %.1f\n",
		stats.TotalGenerations, stats.FinalPopulation, stats.AveragePopulation)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Runtime: %.3fs\n\n",
		stats.GenerationsPerSecond, stats.Elapsed.Seconds())
}

// stagnationWatcher logs when the population dies out or the pattern starts repeating
type stagnationWatcher struct {
	kind     model.Kind
	enabled  bool
	logger   *log.Logger
	history  *model.History
	extinct  bool
	periodic bool
}

func newStagnationWatcher(kind model.Kind, enabled bool, logger *log.Logger) *stagnationWatcher {
	return &stagnationWatcher{kind: kind, enabled: enabled, logger: logger, history: model.NewHistory()}
}

// Report checks one round against the recent history
func (s *stagnationWatcher) Report(round int, v model.View) {
	if !s.enabled {
		return
	}

	if model.CountLiving(v) == 0 {
		if !s.extinct && v.Size() > 0 {
			s.logger.Printf("%s: population extinct at round %d", s.kind, round)
		}
		s.extinct = true
	}

	period := s.history.Observe(v)
	switch {
	case period > 0 && !s.periodic && !s.extinct:
		if period == 1 {
			s.logger.Printf("%s: still life reached at round %d", s.kind, round)
		} else {
			s.logger.Printf("%s: oscillating with period %d since round %d", s.kind, period, round-period)
		}
		s.periodic = true
	case period == 0:
		s.periodic = false
	}
}
