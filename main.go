package main

import (
	"errors"
	"flag"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"arenashooter/arena"
	"arenashooter/assets"
	"arenashooter/config"
	"arenashooter/game"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	flag.String("assets", "", "directory searched for images before the embedded ones")
	flag.Uint64("seed", 0, "hazard placement seed, 0 for the clock")
	flag.String("log-level", "", "debug, info, warn or error")
	flag.String("profile", "", "write a CPU profile of the session into this directory")
	flag.Float64("scale", 0, "window scale")
	flag.Bool("fullscreen", false, "start in fullscreen")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kokaton",
	})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Fatal("load config", "err", err)
		}
	}
	if err := applyFlags(&cfg); err != nil {
		logger.Fatal("bad flag", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("bad config", "err", err)
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)
	logger = logger.With("run", uuid.NewString())

	if cfg.ProfileDir != "" {
		p, err := game.StartProfiler(cfg.ProfileDir, time.Now())
		if err != nil {
			logger.Fatal("start profiler", "err", err)
		}
		defer func() {
			if err := p.Stop(); err != nil {
				logger.Error("stop profiler", "err", err)
			}
			logger.Info("profile saved", "path", p.Path())
		}()
	}

	sprites, err := game.LoadSprites(assets.Default(cfg.AssetDir))
	if err != nil {
		logger.Fatal("load sprites", "err", err)
	}
	fonts, err := game.LoadFonts()
	if err != nil {
		logger.Fatal("load fonts", "err", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	world := arena.NewWorld(sprites.Dimensions(), rand.New(rand.NewPCG(seed, seed>>1)))
	logger.Info("starting", "seed", seed, "assets", cfg.AssetDir, "hazards", len(world.Hazards))

	g := game.NewGame(world, game.NewRenderer(sprites, fonts), logger)

	ebiten.SetTPS(arena.TicksPerSecond)
	ebiten.SetWindowSize(cfg.WindowSize(arena.Width, arena.Height))
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", "err", err)
		os.Exit(1)
	}
}

// applyFlags copies the flags given on the command line over cfg, leaving
// the file or default value for the rest.
func applyFlags(cfg *config.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		v := f.Value.String()
		switch f.Name {
		case "assets":
			cfg.AssetDir = v
		case "seed":
			cfg.Seed, err = strconv.ParseUint(v, 10, 64)
		case "log-level":
			cfg.LogLevel = v
		case "profile":
			cfg.ProfileDir = v
		case "scale":
			cfg.Scale, err = strconv.ParseFloat(v, 64)
		case "fullscreen":
			cfg.Fullscreen, err = strconv.ParseBool(v)
		}
	})
	return err
}
