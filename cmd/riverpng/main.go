// Command riverpng runs a river simulation for a number of ticks and writes
// the final frame to a PNG file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"honnef.co/go/river"
)

type options struct {
	preset  string
	ticks   int
	dt      time.Duration
	seed    int64
	noise   string
	canvas  float64
	pixels  int
	workers int
	out     string
	verbose bool
	trails  bool
	frames  bool
	random  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("riverpng", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.preset, "preset", "loop", "initial river: loop or wave")
	fs.IntVar(&opts.ticks, "ticks", 600, "number of ticks to simulate")
	fs.DurationVar(&opts.dt, "dt", time.Second/60, "simulated time per tick")
	fs.Int64Var(&opts.seed, "seed", 1, "noise seed")
	fs.StringVar(&opts.noise, "noise", "perlin", "noise backend: perlin or simplex")
	fs.Float64Var(&opts.canvas, "canvas", 720, "side length of the simulated canvas")
	fs.IntVar(&opts.pixels, "px", 720, "side length of the output image in pixels")
	fs.IntVar(&opts.workers, "workers", 0, "goroutines used to step the river")
	fs.StringVar(&opts.out, "out", "river.png", "output file")
	fs.BoolVar(&opts.verbose, "v", false, "log per-tick statistics to stderr")
	fs.BoolVar(&opts.trails, "trails", true, "draw the centerline history")
	fs.BoolVar(&opts.frames, "frames", false, "draw node tangents and bitangents")
	fs.BoolVar(&opts.random, "random-color", false, "color the river with a random hue derived from the seed")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() != 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.ticks < 0 || opts.pixels <= 0 || !(opts.canvas > 0) {
		return options{}, errors.New("ticks must not be negative, px and canvas must be positive")
	}
	return opts, nil
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "riverpng:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.verbose {
		river.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer river.SetLogger(nil)
	}

	bounds := river.NewRectFromCenter(river.Point{}, river.Sz(opts.canvas, opts.canvas))
	sim, err := newSimulation(opts, bounds)
	if err != nil {
		return err
	}
	failed := 0
	for range opts.ticks {
		if err := sim.Tick(opts.dt); err != nil {
			var terr *river.TessellationError
			if !errors.As(err, &terr) {
				return err
			}
			failed++
		}
	}
	river.Logger().Info("simulation done",
		slog.Uint64("ticks", sim.Ticks()),
		slog.Int("failed", failed),
		slog.Duration("elapsed", sim.Elapsed()))

	r := Renderer{
		World:      bounds,
		Pixels:     opts.pixels,
		Background: river.Black,
		Trails:     opts.trails,
		Frames:     opts.frames,
	}
	img, err := r.Render(sim.Frame(), sim.History(), sim.River())
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", opts.out, err)
	}
	return f.Close()
}

func newSimulation(opts options, bounds river.Rect) (*river.Simulation, error) {
	noise, err := river.ParseNoise(opts.noise)
	if err != nil {
		return nil, err
	}
	hc := river.DefaultFieldConfig(opts.seed, river.HeightScale, bounds)
	hc.Noise = noise
	height, err := river.NewNoiseField(hc)
	if err != nil {
		return nil, fmt.Errorf("height field: %w", err)
	}
	wc := river.DefaultFieldConfig(opts.seed+1, river.WidthScale, bounds)
	wc.Noise = noise
	width, err := river.NewNoiseField(wc)
	if err != nil {
		return nil, fmt.Errorf("width field: %w", err)
	}

	cfg := river.DefaultConfig()
	cfg.Workers = opts.workers
	preset, err := river.ParsePreset(opts.preset, bounds.Size(), cfg)
	if err != nil {
		return nil, err
	}
	rv, err := preset.Build()
	if err != nil {
		return nil, err
	}
	if opts.random {
		c := river.RandomColor(rand.New(rand.NewPCG(uint64(opts.seed), 0)))
		rv.Start.Color, rv.End.Color = c, c
		for i := range rv.Segments {
			rv.Segments[i].Color = c
		}
	}
	return river.NewSimulation(rv, height, width, cfg)
}
