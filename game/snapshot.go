package game

import (
	"fmt"

	"github.com/rs/zerolog"
)

// SnapshotVersion is the only schema version this build reads or writes.
// Round-tripping within one version is the whole contract.
const SnapshotVersion = 1

// Snapshot is a complete, serializable image of a session: board layout
// and occupancy, players, and the full state-machine progress including
// any in-flight command. Ships are referenced by (seat, pool index) so the
// object graph stays acyclic.
type Snapshot struct {
	Version int              `json:"version"`
	Turn    int              `json:"turn"`
	Players []PlayerSnapshot `json:"players"`
	Current int              `json:"current"`
	Board   BoardSnapshot    `json:"board"`
	State   StateSnapshot    `json:"state"`
}

type PlayerSnapshot struct {
	Name     string         `json:"name"`
	Color    int            `json:"color"`
	Strategy string         `json:"strategy"`
	Score    int            `json:"score"`
	Commands []int          `json:"commands,omitempty"`
	Ships    []ShipSnapshot `json:"ships"`
}

type ShipSnapshot struct {
	Deployed bool `json:"deployed"`
	Moved    bool `json:"moved"`
	Invaded  bool `json:"invaded"`
}

// ShipRef names a ship by its owner's seat and its pool index.
type ShipRef struct {
	Player int `json:"player"`
	Index  int `json:"index"`
}

type BoardSnapshot struct {
	Sectors  []SectorSnapshot    `json:"sectors"`
	Occupied []OccupancySnapshot `json:"occupied"`
}

type SectorSnapshot struct {
	ID      int              `json:"id"`
	Central bool             `json:"central"`
	Scored  bool             `json:"scored"`
	Systems []SystemSnapshot `json:"systems"`
}

type SystemSnapshot struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Level int `json:"level"`
}

type OccupancySnapshot struct {
	X     int       `json:"x"`
	Y     int       `json:"y"`
	Ships []ShipRef `json:"ships"`
}

type StateSnapshot struct {
	Phase   string           `json:"phase"`
	Deploy  *DeploySnapshot  `json:"deploy,omitempty"`
	Plan    *PlanSnapshot    `json:"plan,omitempty"`
	Perform *PerformSnapshot `json:"perform,omitempty"`
	Exploit *ExploitSnapshot `json:"exploit,omitempty"`
	EndGame *EndGameSnapshot `json:"endGame,omitempty"`
}

type DeploySnapshot struct {
	Counter         int   `json:"counter"`
	OccupiedSectors []int `json:"occupiedSectors"`
}

type PlanSnapshot struct {
	Counter int `json:"counter"`
}

type PerformSnapshot struct {
	SubPhase     int                                    `json:"subPhase"`
	CmdIndex     int                                    `json:"cmdIndex"`
	Efficiencies [numPerformPhases][numCommands + 1]int `json:"efficiencies"`
	Order        [numPerformPhases][]int                `json:"order"`
	Command      *CommandSnapshot                       `json:"command,omitempty"`
}

type CommandSnapshot struct {
	ID          int                  `json:"id"`
	Expand      *ExpandSnapshot      `json:"expand,omitempty"`
	Explore     *ExploreSnapshot     `json:"explore,omitempty"`
	Exterminate *ExterminateSnapshot `json:"exterminate,omitempty"`
}

type ExpandSnapshot struct {
	Total int `json:"total"`
	Added int `json:"added"`
}

type ExploreSnapshot struct {
	Allowed int       `json:"allowed"`
	Made    int       `json:"made"`
	Path    []Coord   `json:"path,omitempty"`
	Fleet   []ShipRef `json:"fleet,omitempty"`
}

type ExterminateSnapshot struct {
	Allowed  int     `json:"allowed"`
	Made     int     `json:"made"`
	Target   *Coord  `json:"target,omitempty"`
	Invading []Coord `json:"invading,omitempty"`
	Used     int     `json:"used"`
	MaxShips int     `json:"maxShips"`
}

type ExploitSnapshot struct {
	Counter int  `json:"counter"`
	Swept   bool `json:"swept"`
}

type EndGameSnapshot struct {
	Winner int `json:"winner"`
}

// Snapshot captures the session at its current suspension point. The
// engine must be idle, waiting on a strategy decision or finished; a
// transient state cannot be captured.
func (g *Game) Snapshot() (*Snapshot, error) {
	seat := make(map[*Player]int, len(g.players))
	for i, p := range g.players {
		seat[p] = i
	}

	snap := &Snapshot{
		Version: SnapshotVersion,
		Turn:    g.turn,
		Current: -1,
	}
	if g.current != nil {
		snap.Current = seat[g.current]
	}

	for _, p := range g.players {
		ps := PlayerSnapshot{
			Name:     p.name,
			Color:    int(p.color),
			Score:    p.score,
			Strategy: p.strategy.Name(),
		}
		for _, c := range p.commands {
			ps.Commands = append(ps.Commands, int(c))
		}
		for _, s := range p.ships {
			ps.Ships = append(ps.Ships, ShipSnapshot{
				Deployed: s.deployed,
				Moved:    s.moved,
				Invaded:  s.invaded,
			})
		}
		snap.Players = append(snap.Players, ps)
	}

	for _, sector := range g.board.Sectors() {
		ss := SectorSnapshot{
			ID:      sector.id,
			Central: sector.central,
			Scored:  sector.scored,
		}
		for _, h := range sector.systems {
			ss.Systems = append(ss.Systems, SystemSnapshot{X: h.x, Y: h.y, Level: h.level})
		}
		snap.Board.Sectors = append(snap.Board.Sectors, ss)
	}

	for _, h := range g.board.Hexes() {
		if len(h.ships) == 0 {
			continue
		}
		os := OccupancySnapshot{X: h.x, Y: h.y}
		for _, s := range h.ships {
			os.Ships = append(os.Ships, ShipRef{Player: seat[s.owner], Index: s.index})
		}
		snap.Board.Occupied = append(snap.Board.Occupied, os)
	}

	state, err := g.snapshotState(seat)
	if err != nil {
		return nil, err
	}
	snap.State = state
	return snap, nil
}

func (g *Game) snapshotState(seat map[*Player]int) (StateSnapshot, error) {
	switch s := g.state.(type) {
	case *DeployState:
		ds := &DeploySnapshot{Counter: s.counter}
		for _, sector := range s.occupiedSectors {
			ds.OccupiedSectors = append(ds.OccupiedSectors, sector.id)
		}
		return StateSnapshot{Phase: PhaseDeploy.String(), Deploy: ds}, nil
	case *PlanState:
		return StateSnapshot{Phase: PhasePlan.String(), Plan: &PlanSnapshot{Counter: s.counter}}, nil
	case *PerformState:
		ps := &PerformSnapshot{
			SubPhase:     s.phase,
			CmdIndex:     s.cmdIndex,
			Efficiencies: s.efficiencies,
		}
		for phase, players := range s.order {
			for _, p := range players {
				ps.Order[phase] = append(ps.Order[phase], seat[p])
			}
		}
		if s.current != nil {
			cs, err := snapshotCommand(s.current, seat)
			if err != nil {
				return StateSnapshot{}, err
			}
			ps.Command = cs
		}
		return StateSnapshot{Phase: PhasePerform.String(), Perform: ps}, nil
	case *ExploitState:
		return StateSnapshot{Phase: PhaseExploit.String(), Exploit: &ExploitSnapshot{Counter: s.counter, Swept: s.swept}}, nil
	case *EndGameState:
		es := &EndGameSnapshot{Winner: -1}
		if s.winner != nil {
			es.Winner = seat[s.winner]
		}
		return StateSnapshot{Phase: PhaseEndGame.String(), EndGame: es}, nil
	default:
		return StateSnapshot{}, fmt.Errorf("state %s cannot be captured", g.state.Phase())
	}
}

func snapshotCommand(cmd Command, seat map[*Player]int) (*CommandSnapshot, error) {
	switch c := cmd.(type) {
	case *Expand:
		return &CommandSnapshot{
			ID:     int(CommandExpand),
			Expand: &ExpandSnapshot{Total: c.total, Added: c.added},
		}, nil
	case *Explore:
		es := &ExploreSnapshot{Allowed: c.allowed, Made: c.made}
		for _, h := range c.path {
			es.Path = append(es.Path, h.Coord())
		}
		for _, s := range c.fleet {
			es.Fleet = append(es.Fleet, ShipRef{Player: seat[s.owner], Index: s.index})
		}
		return &CommandSnapshot{ID: int(CommandExplore), Explore: es}, nil
	case *Exterminate:
		es := &ExterminateSnapshot{
			Allowed:  c.allowed,
			Made:     c.made,
			Used:     c.used,
			MaxShips: c.maxShips,
		}
		if c.target != nil {
			coord := c.target.Coord()
			es.Target = &coord
		}
		for _, h := range c.invading {
			es.Invading = append(es.Invading, h.Coord())
		}
		return &CommandSnapshot{ID: int(CommandExterminate), Exterminate: es}, nil
	default:
		return nil, fmt.Errorf("unknown command type %T", cmd)
	}
}

// Restore rebuilds a session from a snapshot. The factory recreates each
// player's strategy from its recorded profile name. The caller's options
// apply to the new session; calling Run on it resumes at the exact
// suspension point by re-issuing the pending decision request. On error no
// partially built session escapes.
func Restore(snap *Snapshot, factory StrategyFactory, opts ...Option) (*Game, error) {
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if len(snap.Players) != NumPlayers {
		return nil, fmt.Errorf("snapshot has %d players, want %d", len(snap.Players), NumPlayers)
	}

	g := &Game{turn: snap.Turn, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(g)
	}

	g.board = newBareBoard()
	if err := g.applyBoard(&snap.Board, snap.Players); err != nil {
		return nil, err
	}

	if snap.Current >= 0 {
		if snap.Current >= len(g.players) {
			return nil, fmt.Errorf("current player %d out of range", snap.Current)
		}
		g.current = g.players[snap.Current]
	}

	if err := g.restoreState(&snap.State); err != nil {
		return nil, err
	}

	for i, p := range g.players {
		strategy, err := factory(snap.Players[i].Strategy, p, g)
		if err != nil {
			return nil, fmt.Errorf("restore strategy for %s: %w", p.name, err)
		}
		p.SetStrategy(strategy)
	}

	g.board.setUpdateHook(g.hexUpdated)
	return g, nil
}

// applyBoard rebuilds players, the recorded sector layout, and hex
// occupancy on a bare board.
func (g *Game) applyBoard(bs *BoardSnapshot, players []PlayerSnapshot) error {
	for _, ps := range players {
		if len(ps.Ships) != ShipsPerPlayer {
			return fmt.Errorf("player %s has %d ships, want %d", ps.Name, len(ps.Ships), ShipsPerPlayer)
		}
		p := newPlayer(ps.Name, Color(ps.Color))
		p.score = ps.Score
		for _, c := range ps.Commands {
			p.commands = append(p.commands, CommandID(c))
		}
		for i, ss := range ps.Ships {
			p.ships[i].deployed = ss.Deployed
			p.ships[i].moved = ss.Moved
			p.ships[i].invaded = ss.Invaded
		}
		p.onScore = func(p *Player) {
			if g.hooks.ScoreChanged != nil {
				g.hooks.ScoreChanged(p)
			}
		}
		g.players = append(g.players, p)
	}

	if len(bs.Sectors) != numSectors {
		return fmt.Errorf("snapshot has %d sectors, want %d", len(bs.Sectors), numSectors)
	}
	for _, ss := range bs.Sectors {
		if ss.ID < 0 || ss.ID >= numSectors {
			return fmt.Errorf("sector id %d out of range", ss.ID)
		}
		if ss.Central {
			// The central sector is part of the bare board.
			g.board.sectors[centralSector].scored = ss.Scored
			continue
		}
		sector := newSector(ss.ID)
		sector.scored = ss.Scored
		for _, sys := range ss.Systems {
			h := g.board.HexAt(sys.X, sys.Y)
			if h == nil {
				return fmt.Errorf("sector %d references missing hex %d,%d", ss.ID, sys.X, sys.Y)
			}
			h.setSystem(sys.Level)
			sector.addSystem(h)
			g.board.bySystem[h] = sector
			g.board.systems = append(g.board.systems, h)
		}
		g.board.sectors[ss.ID] = sector
	}

	for _, os := range bs.Occupied {
		h := g.board.HexAt(os.X, os.Y)
		if h == nil {
			return fmt.Errorf("occupancy references missing hex %d,%d", os.X, os.Y)
		}
		ships, err := g.resolveShips(os.Ships)
		if err != nil {
			return err
		}
		h.AddShips(ships)
	}
	return nil
}

func (g *Game) resolveShips(refs []ShipRef) ([]*Ship, error) {
	out := make([]*Ship, 0, len(refs))
	for _, ref := range refs {
		if ref.Player < 0 || ref.Player >= len(g.players) {
			return nil, fmt.Errorf("ship ref seat %d out of range", ref.Player)
		}
		if ref.Index < 0 || ref.Index >= ShipsPerPlayer {
			return nil, fmt.Errorf("ship ref index %d out of range", ref.Index)
		}
		out = append(out, g.players[ref.Player].ships[ref.Index])
	}
	return out, nil
}

func (g *Game) resolveHexes(coords []Coord) ([]*Hex, error) {
	out := make([]*Hex, 0, len(coords))
	for _, c := range coords {
		h := g.board.HexAt(c.X, c.Y)
		if h == nil {
			return nil, fmt.Errorf("missing hex %v", c)
		}
		out = append(out, h)
	}
	return out, nil
}

func (g *Game) restoreState(ss *StateSnapshot) error {
	switch ss.Phase {
	case PhaseDeploy.String():
		if ss.Deploy == nil {
			return fmt.Errorf("deploy state missing payload")
		}
		state := NewDeployState(g)
		state.counter = ss.Deploy.Counter
		for _, id := range ss.Deploy.OccupiedSectors {
			if id < 0 || id >= numSectors {
				return fmt.Errorf("occupied sector %d out of range", id)
			}
			state.occupiedSectors = append(state.occupiedSectors, g.board.sectors[id])
		}
		g.state = state
	case PhasePlan.String():
		if ss.Plan == nil {
			return fmt.Errorf("plan state missing payload")
		}
		state := NewPlanState(g)
		state.counter = ss.Plan.Counter
		g.state = state
	case PhasePerform.String():
		if ss.Perform == nil {
			return fmt.Errorf("perform state missing payload")
		}
		state := NewPerformState(g)
		state.phase = ss.Perform.SubPhase
		state.cmdIndex = ss.Perform.CmdIndex
		state.efficiencies = ss.Perform.Efficiencies
		for phase, seats := range ss.Perform.Order {
			for _, seat := range seats {
				if seat < 0 || seat >= len(g.players) {
					return fmt.Errorf("order seat %d out of range", seat)
				}
				state.order[phase] = append(state.order[phase], g.players[seat])
			}
		}
		if ss.Perform.Command != nil {
			cmd, err := g.restoreCommand(ss.Perform.Command, state)
			if err != nil {
				return err
			}
			state.current = cmd
		}
		g.state = state
	case PhaseExploit.String():
		if ss.Exploit == nil {
			return fmt.Errorf("exploit state missing payload")
		}
		state := NewExploitState(g)
		state.counter = ss.Exploit.Counter
		state.swept = ss.Exploit.Swept
		g.state = state
	case PhaseEndGame.String():
		if ss.EndGame == nil {
			return fmt.Errorf("end-game state missing payload")
		}
		state := NewEndGameState(g)
		if ss.EndGame.Winner >= 0 {
			if ss.EndGame.Winner >= len(g.players) {
				return fmt.Errorf("winner seat %d out of range", ss.EndGame.Winner)
			}
			state.winner = g.players[ss.EndGame.Winner]
		}
		g.state = state
	default:
		return fmt.Errorf("unknown phase %q", ss.Phase)
	}
	return nil
}

func (g *Game) restoreCommand(cs *CommandSnapshot, state *PerformState) (Command, error) {
	p := g.current
	if p == nil {
		return nil, fmt.Errorf("in-flight command without a current player")
	}
	switch CommandID(cs.ID) {
	case CommandExpand:
		if cs.Expand == nil {
			return nil, fmt.Errorf("expand command missing payload")
		}
		cmd := &Expand{game: g, player: p, done: state.NextCommand}
		cmd.total = cs.Expand.Total
		cmd.added = cs.Expand.Added
		return cmd, nil
	case CommandExplore:
		if cs.Explore == nil {
			return nil, fmt.Errorf("explore command missing payload")
		}
		cmd := &Explore{game: g, player: p, done: state.NextCommand}
		cmd.allowed = cs.Explore.Allowed
		cmd.made = cs.Explore.Made
		path, err := g.resolveHexes(cs.Explore.Path)
		if err != nil {
			return nil, err
		}
		cmd.path = path
		fleet, err := g.resolveShips(cs.Explore.Fleet)
		if err != nil {
			return nil, err
		}
		cmd.fleet = fleet
		return cmd, nil
	case CommandExterminate:
		if cs.Exterminate == nil {
			return nil, fmt.Errorf("exterminate command missing payload")
		}
		cmd := &Exterminate{game: g, player: p, done: state.NextCommand}
		cmd.allowed = cs.Exterminate.Allowed
		cmd.made = cs.Exterminate.Made
		cmd.used = cs.Exterminate.Used
		cmd.maxShips = cs.Exterminate.MaxShips
		if cs.Exterminate.Target != nil {
			h := g.board.HexAt(cs.Exterminate.Target.X, cs.Exterminate.Target.Y)
			if h == nil {
				return nil, fmt.Errorf("missing invasion target %v", *cs.Exterminate.Target)
			}
			cmd.target = h
		}
		invading, err := g.resolveHexes(cs.Exterminate.Invading)
		if err != nil {
			return nil, err
		}
		cmd.invading = invading
		return cmd, nil
	default:
		return nil, fmt.Errorf("unknown command id %d", cs.ID)
	}
}
