package game

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

const (
	// NumPlayers is the fixed player count of a full game.
	NumPlayers = 3

	// MaxTurns is the round after which the game always ends.
	MaxTurns = 9

	maxNameLength = 7
)

// Game is the session root: board, players, turn counter, the current
// phase state and the observer hooks. The engine is single threaded; every
// mutator must be called from the same logical thread that called Run.
type Game struct {
	board   *Board
	players []*Player
	turn    int
	current *Player
	state   State
	rng     *rand.Rand
	log     zerolog.Logger
	hooks   Hooks
}

type Option func(*Game)

// WithSeed fixes the RNG seed used for board generation, making the layout
// reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) { g.log = logger }
}

func WithHooks(hooks Hooks) Option {
	return func(g *Game) { g.hooks = hooks }
}

// New creates a session with a freshly generated board, ready for players
// to join. The game starts in the deploy phase.
func New(opts ...Option) *Game {
	g := &Game{
		turn: 1,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	g.board = NewBoard(g.rng)
	g.board.setUpdateHook(g.hexUpdated)
	g.state = NewDeployState(g)
	return g
}

// AddPlayer registers a player in the next free slot. Names longer than 7
// characters are truncated; colors follow join order. The strategy must be
// attached before Run.
func (g *Game) AddPlayer(name string) (*Player, error) {
	if len(g.players) == NumPlayers {
		return nil, fmt.Errorf("game already has %d players", NumPlayers)
	}
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}
	p := newPlayer(name, Color(len(g.players)))
	p.onScore = func(p *Player) {
		if g.hooks.ScoreChanged != nil {
			g.hooks.ScoreChanged(p)
		}
	}
	g.players = append(g.players, p)
	g.log.Debug().Str("player", p.name).Stringer("color", p.color).Msg("player joined")
	return p, nil
}

// Run enters the current phase state. For a fully scripted game this plays
// to the end; with an interactive strategy it returns as soon as the
// engine is waiting on a decision, and resumes when the decision is fed
// back through the pending state or command.
func (g *Game) Run() error {
	if !g.Ongoing() {
		return fmt.Errorf("need %d players, have %d", NumPlayers, len(g.players))
	}
	for _, p := range g.players {
		if p.strategy == nil {
			return fmt.Errorf("player %s has no strategy", p.name)
		}
	}
	g.state.Run()
	return nil
}

// Ongoing reports whether the session has a full roster.
func (g *Game) Ongoing() bool {
	return len(g.players) == NumPlayers
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) Turn() int { return g.turn }

// Players returns the current player order.
func (g *Game) Players() []*Player {
	out := make([]*Player, len(g.players))
	copy(out, g.players)
	return out
}

func (g *Game) CurrentPlayer() *Player { return g.current }

// State returns the current phase state.
func (g *Game) State() State { return g.state }

func (g *Game) transitionTo(s State) {
	g.log.Debug().Str("state", s.Phase().String()).Msg("state transition")
	g.state = s
}

func (g *Game) runState() {
	g.state.Run()
}

func (g *Game) setCurrentPlayerIndex(i int) {
	g.setCurrentPlayer(g.players[i])
}

func (g *Game) setCurrentPlayer(p *Player) {
	g.current = p
	g.notifyCurrentPlayer()
}

// rotatePlayers moves the last player to the front, shifting everyone else
// down one seat.
func (g *Game) rotatePlayers() {
	n := len(g.players)
	if n == 0 {
		return
	}
	last := g.players[n-1]
	copy(g.players[1:], g.players[:n-1])
	g.players[0] = last
	g.notifyPlayerOrder()
}

func (g *Game) incrementTurn() {
	g.turn++
	g.notifyTurnChanged()
}

func (g *Game) hexUpdated(h *Hex) {
	if g.hooks.HexUpdated != nil {
		g.hooks.HexUpdated(h)
	}
}
