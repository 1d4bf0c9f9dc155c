package game

// maxExploreRange caps a fleet movement at two hexes from its start.
const maxExploreRange = 2

// Explore moves fleets across unoccupied or friendly hexes. The quota is
// 4 - efficiency fleet movements; each movement walks a path of up to two
// hexes, picking up or dropping ships along the way via signed fleet
// adjustments. Ships that join a fleet are marked moved for the round.
type Explore struct {
	game    *Game
	player  *Player
	allowed int
	made    int
	path    []*Hex
	fleet   []*Ship
	done    func()
}

func newExplore(g *Game, p *Player, efficiency int, done func()) *Explore {
	return &Explore{game: g, player: p, allowed: 4 - efficiency, done: done}
}

func (c *Explore) ID() CommandID { return CommandExplore }

func (c *Explore) Player() *Player { return c.player }

func (c *Explore) Run() {
	if c.finished() {
		c.Finish()
		return
	}
	if len(c.path) == 0 {
		c.player.strategy.ExploreChooseStart(c, c.StartCandidates())
	} else {
		c.continueMovement()
	}
}

// Finish lands any in-flight fleet and ends the command.
func (c *Explore) Finish() {
	c.finalizeMovement()
	c.done()
}

func (c *Explore) finished() bool {
	return c.made >= c.allowed ||
		(len(c.path) == 0 && len(c.StartCandidates()) == 0)
}

func (c *Explore) continueMovement() {
	next := c.NextCandidates()
	if c.shouldFinalize(next) {
		c.finalizeMovement()
		c.Run()
		return
	}
	c.player.strategy.ExploreChooseNext(c, next)
}

// shouldFinalize decides when a movement auto-lands: range exhausted, the
// Tri-Prime reached (movement cannot pass through it), or nowhere left to
// go.
func (c *Explore) shouldFinalize(next []*Hex) bool {
	return len(c.path) > maxExploreRange ||
		(len(c.path) > 1 && c.Head().IsTriPrime()) ||
		len(next) == 0
}

// StartCandidates lists hexes a movement may start from: player controlled,
// holding at least one unmoved ship, with a reachable neighbor.
func (c *Explore) StartCandidates() []*Hex {
	var out []*Hex
	for _, h := range c.game.board.HexesOccupiedBy(c.player) {
		if h.UnmovedShipCount() > 0 && c.hasReachableNeighbor(h) {
			out = append(out, h)
		}
	}
	return out
}

func (c *Explore) hasReachableNeighbor(h *Hex) bool {
	for _, n := range h.neighbors {
		if !n.Occupied() || n.ControlledBy(c.player) {
			return true
		}
	}
	return false
}

// NextCandidates lists the hexes the fleet may move onto from the path
// head: neighbors that are unoccupied or player controlled. Nil when no
// movement is in progress.
func (c *Explore) NextCandidates() []*Hex {
	head := c.Head()
	if head == nil {
		return nil
	}
	var out []*Hex
	for _, n := range head.neighbors {
		if !n.Occupied() || n.ControlledBy(c.player) {
			out = append(out, n)
		}
	}
	return out
}

// CanStart validates a movement start hex.
func (c *Explore) CanStart(start *Hex) bool {
	return start != nil &&
		start.ControlledBy(c.player) &&
		start.UnmovedShipCount() > 0 &&
		c.hasReachableNeighbor(start)
}

// Start begins a new movement path at the chosen hex. An illegal choice is
// ignored.
func (c *Explore) Start(start *Hex) {
	if !c.CanStart(start) {
		return
	}
	c.path = c.path[:0]
	c.path = append(c.path, start)
	c.Run()
}

// CanMoveNext validates a path extension. The destination must be an
// unoccupied or friendly neighbor of the path head, and the fleet
// adjustment must respect ship counts: a positive adjustment picks up that
// many unmoved ships from the head, a negative one leaves ships behind,
// and zero requires a non-empty fleet to move at all.
func (c *Explore) CanMoveNext(next *Hex, fleetAdjustment int) bool {
	if next == nil {
		return false
	}
	head := c.Head()
	accessible := (!next.Occupied() || next.ControlledBy(c.player)) && head.IsNeighbor(next)

	switch {
	case fleetAdjustment < 0:
		return accessible && len(c.fleet) > -fleetAdjustment
	case fleetAdjustment > 0:
		return accessible && head.UnmovedShipCount() >= fleetAdjustment
	default:
		return accessible && len(c.fleet) > 0
	}
}

// MoveNext applies the fleet adjustment at the current head and extends
// the path. An illegal choice is ignored.
func (c *Explore) MoveNext(next *Hex, fleetAdjustment int) {
	if !c.CanMoveNext(next, fleetAdjustment) {
		return
	}
	c.adjustFleet(c.Head(), fleetAdjustment)
	c.path = append(c.path, next)
	c.Run()
}

// FinishCurrentMovement lands the fleet where it stands and starts the
// next movement if quota remains. Stopping early is a legal decision, not
// a rollback.
func (c *Explore) FinishCurrentMovement() {
	c.finalizeMovement()
	c.Run()
}

// finalizeMovement lands the fleet on the path head and spends one
// movement. Spending the movement even on an empty path guarantees the
// command terminates.
func (c *Explore) finalizeMovement() {
	if head := c.Head(); head != nil {
		head.AddShips(c.fleet)
		c.game.log.Debug().
			Str("player", c.player.name).
			Stringer("hex", head.Coord()).
			Int("fleet", len(c.fleet)).
			Msg("fleet landed")
	}
	c.fleet = nil
	c.made++
	c.path = nil
}

func (c *Explore) adjustFleet(head *Hex, adjustment int) {
	switch {
	case adjustment > 0:
		c.fleet = append(c.fleet, c.takeShips(head, adjustment)...)
	case adjustment < 0:
		c.leaveShips(head, -adjustment)
	}
}

// takeShips picks up n unmoved ships from the hex into the fleet, marking
// them moved.
func (c *Explore) takeShips(h *Hex, n int) []*Ship {
	unmoved := h.UnmovedShips()
	if len(unmoved) < n {
		return nil
	}
	taken := unmoved[:n]
	for _, s := range taken {
		s.SetMoved(true)
	}
	h.RemoveShips(taken)
	return taken
}

// leaveShips drops the first n fleet ships back onto the hex. They stay
// marked moved for the round.
func (c *Explore) leaveShips(h *Hex, n int) {
	n = min(n, len(c.fleet))
	left := c.fleet[:n]
	c.fleet = c.fleet[n:]
	h.AddShips(left)
}

// Head returns the current end of the movement path, nil when no movement
// is in progress.
func (c *Explore) Head() *Hex {
	if len(c.path) == 0 {
		return nil
	}
	return c.path[len(c.path)-1]
}

// HexBefore returns the hex the fleet came from, nil at the path start.
func (c *Explore) HexBefore() *Hex {
	if len(c.path) <= 1 {
		return nil
	}
	return c.path[len(c.path)-2]
}

func (c *Explore) PathLength() int { return len(c.path) }

func (c *Explore) FleetSize() int { return len(c.fleet) }

func (c *Explore) MovementsMade() int { return c.made }

func (c *Explore) MovementsAllowed() int { return c.allowed }
