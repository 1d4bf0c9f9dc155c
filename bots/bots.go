// Package bots provides the scripted strategy profiles and the interactive
// shim that defer the engine's decision points to an outside caller.
package bots

import (
	"fmt"

	"golang.org/x/exp/rand"

	"imperium/game"
)

// Strategy profile names, as stored in snapshots and config files.
const (
	Aggressive = "aggressive"
	Friendly   = "friendly"
	Human      = "human"
)

// New builds a strategy by profile name. The rng drives the profiles'
// random choices; delay, when non nil, runs before every decision to
// simulate thinking.
func New(profile string, p *game.Player, g *game.Game, rng *rand.Rand, delay func()) (game.Strategy, error) {
	t := thinker{game: g, player: p, delay: delay}
	switch profile {
	case Aggressive:
		return &aggressiveBot{thinker: t, rng: rng}, nil
	case Friendly:
		return &friendlyBot{thinker: t, rng: rng}, nil
	case Human:
		return &Interactive{game: g, player: p}, nil
	default:
		return nil, fmt.Errorf("unknown strategy profile %q", profile)
	}
}

// Factory adapts New for restoring saved games.
func Factory(rng *rand.Rand, delay func()) game.StrategyFactory {
	return func(name string, p *game.Player, g *game.Game) (game.Strategy, error) {
		return New(name, p, g, rng, delay)
	}
}

// thinker wraps a decision in the thinking notifications and the optional
// delay. The decision itself runs synchronously on the engine's thread.
type thinker struct {
	game   *game.Game
	player *game.Player
	delay  func()
}

func (t thinker) think(activity string, decide func()) {
	t.game.BotThinking(t.player, t.player.Name()+" is "+activity)
	if t.delay != nil {
		t.delay()
	}
	t.game.BotDoneThinking(t.player)
	decide()
}
