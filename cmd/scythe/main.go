// Command scythe prints a random Scythe setup: structure bonus, optional
// Wind Gambit tiles, and a faction and player mat for every player.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/dabron/scythe/internal/adapters/catalog"
	"github.com/dabron/scythe/internal/adapters/metrics"
	"github.com/dabron/scythe/internal/adapters/random"
	"github.com/dabron/scythe/internal/adapters/render"
	"github.com/dabron/scythe/internal/app"
	"github.com/dabron/scythe/internal/config"
	"github.com/dabron/scythe/internal/domain"
)

const defaultPlayers = 5

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	players  int
	features domain.Features
	seed     uint64
	seeded   bool
	format   string
	noColor  bool
}

// parseArgs reports its own errors on stderr, as flag.FlagSet does.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("scythe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: scythe [flags] [player-count]")
		fs.PrintDefaults()
	}

	boolFlag := func(dst *bool, long, short, usage string) {
		fs.BoolVar(dst, long, false, usage)
		fs.BoolVar(dst, short, false, "shorthand for -"+long)
	}
	boolFlag(&o.features.InvadersFromAfar, "invaders-from-afar", "i", "add Albion, Togawa and the 2A/3A player mats")
	boolFlag(&o.features.WindGambit, "wind-gambit", "w", "pick a resolution tile and airship tiles")
	boolFlag(&o.features.RiseOfFenris, "rise-of-fenris", "r", "add Tesla")
	boolFlag(&o.features.ModularBoard, "modular-board", "m", "add the modular board structure bonuses")
	fs.Func("seed", "seed for a reproducible setup", func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		o.seed, o.seeded = v, true
		return nil
	})
	fs.StringVar(&o.format, "format", string(render.FormatText), "output format: text, table or json")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.players = defaultPlayers
	switch fs.NArg() {
	case 0:
	case 1:
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			err = fmt.Errorf("player count %q is not a number", fs.Arg(0))
			fmt.Fprintln(stderr, err)
			fs.Usage()
			return o, err
		}
		o.players = n
	default:
		err := errors.New("too many arguments")
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return o, err
	}

	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	renderer, err := render.New(render.Format(o.format), o.noColor)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	var rng domain.RNG = random.New()
	if o.seeded {
		rng = random.NewSeeded(o.seed)
	}

	svc := app.NewSetupService(catalog.NewEmbeddedStore(), metrics.Nop{}, logger)
	setup, err := svc.Generate(context.Background(), app.SetupRequest{Players: o.players, Features: o.features}, rng)
	if errors.Is(err, domain.ErrInvalidPlayerCount) {
		fmt.Fprintf(stdout, "Player count must be from %d to %d\n", domain.MinPlayers, domain.MaxPlayers(o.features))
		return 0
	}
	if err != nil {
		logger.Error("generate setup", "error", err)
		return 1
	}

	if err := renderer.Render(stdout, setup); err != nil {
		logger.Error("render setup", "error", err)
		return 1
	}
	return 0
}
