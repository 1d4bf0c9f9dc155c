package game

// Color identifies a player slot. Colors are assigned in join order.
type Color int

const (
	Blue Color = iota
	Green
	Red
)

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// Player owns a fixed pool of ships, a score, the command order chosen for
// the current round, and the strategy that answers decision requests.
type Player struct {
	name     string
	color    Color
	ships    []*Ship
	score    int
	commands []CommandID
	strategy Strategy

	onScore func(*Player)
}

func newPlayer(name string, color Color) *Player {
	p := &Player{name: name, color: color}
	p.ships = make([]*Ship, ShipsPerPlayer)
	for i := range p.ships {
		p.ships[i] = newShip(p, i)
	}
	return p
}

func (p *Player) Name() string { return p.name }

func (p *Player) Color() Color { return p.color }

func (p *Player) String() string { return p.name }

func (p *Player) Strategy() Strategy { return p.strategy }

// SetStrategy attaches the decision maker for this player. Must be set
// before the game starts.
func (p *Player) SetStrategy(s Strategy) { p.strategy = s }

func (p *Player) Score() int { return p.score }

func (p *Player) AddToScore(points int) {
	p.score += points
	if p.onScore != nil {
		p.onScore(p)
	}
}

// Ships returns the full pool in index order.
func (p *Player) Ships() []*Ship { return p.ships }

// UndeployedShips returns the ships currently off the board, in pool order.
func (p *Player) UndeployedShips() []*Ship {
	var out []*Ship
	for _, s := range p.ships {
		if !s.deployed {
			out = append(out, s)
		}
	}
	return out
}

// Eliminated reports whether the player has no presence on the board.
func (p *Player) Eliminated() bool {
	return len(p.UndeployedShips()) == ShipsPerPlayer
}

// resetShipsForNewRound clears every ship's per-round flags.
func (p *Player) resetShipsForNewRound() {
	for _, s := range p.ships {
		s.resetForNewRound()
	}
}

// CommandForPhase returns the command the player planned for the given
// perform sub-phase.
func (p *Player) CommandForPhase(phase int) CommandID {
	return p.commands[phase]
}

func (p *Player) ChosenCommands() []CommandID { return p.commands }

func (p *Player) setChosenCommands(commands []CommandID) {
	p.commands = commands
}
