package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"imperium/bots"
	"imperium/config"
	"imperium/game"
	"imperium/saves"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "YAML game setup; defaults to three bots")
	saveName := flag.String("save", "", "save the finished game under this name")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		logger = logger.Level(lvl)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("loading config")
		}
		cfg = loaded
	}

	if err := run(cfg, *saveName, logger); err != nil {
		logger.Fatal().Err(err).Msg("game failed")
	}
}

func run(cfg *config.Config, saveName string, logger zerolog.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info().Uint64("seed", seed).Msg("starting game")

	g := game.New(
		game.WithSeed(seed),
		game.WithLogger(logger),
		game.WithHooks(game.Hooks{
			TurnChanged: func(turn int) {
				logger.Info().Int("turn", turn).Msg("turn changed")
			},
			SectorScored: func(s *game.Sector, by *game.Player) {
				logger.Info().Int("sector", s.ID()).Str("player", by.Name()).Msg("sector scored")
			},
			SubPhaseStarted: func(phase int, eff map[game.CommandID]int) {
				logger.Info().Int("subPhase", phase).
					Int("expand", eff[game.CommandExpand]).
					Int("explore", eff[game.CommandExplore]).
					Int("exterminate", eff[game.CommandExterminate]).
					Msg("command efficiencies")
			},
			GameEnded: func(winner *game.Player) {
				logger.Info().Str("winner", winner.Name()).Int("score", winner.Score()).Msg("game ended")
			},
			Thinking: func(p *game.Player, activity string) {
				logger.Debug().Str("player", p.Name()).Msg(activity)
			},
		}),
	)

	botRNG := rand.New(rand.NewSource(seed + 1))
	var delay func()
	if cfg.BotDelayMs > 0 {
		delay = func() { time.Sleep(time.Duration(cfg.BotDelayMs) * time.Millisecond) }
	}

	for _, spec := range cfg.Players {
		if !spec.Bot {
			return fmt.Errorf("seat %q is human; the command-line runner plays bots only", spec.Name)
		}
		p, err := g.AddPlayer(spec.Name)
		if err != nil {
			return err
		}
		strategy, err := bots.New(spec.Profile, p, g, botRNG, delay)
		if err != nil {
			return err
		}
		p.SetStrategy(strategy)
	}

	if err := g.Run(); err != nil {
		return err
	}

	for _, p := range g.Players() {
		logger.Info().Str("player", p.Name()).Int("score", p.Score()).Msg("final score")
	}

	if saveName != "" && cfg.SavesPath != "" {
		if err := saveGame(g, cfg.SavesPath, saveName, logger); err != nil {
			return err
		}
	}
	return nil
}

func saveGame(g *game.Game, path, name string, logger zerolog.Logger) error {
	store, err := saves.Open(path, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	snap, err := g.Snapshot()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := store.Save(ctx, name, snap); err != nil {
		return err
	}

	entries, err := store.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		logger.Info().Str("name", e.Name).Int("turn", e.Turn).Time("created", e.CreatedAt).Msg("save")
	}
	return nil
}
