package game

// Exterminate invades occupied enemy systems. The quota is 4 - efficiency
// invasions; each invasion targets one hex and may draw ships from several
// adjacent friendly hexes, resolving combat after every commitment.
type Exterminate struct {
	game    *Game
	player  *Player
	allowed int
	made    int

	// In-progress invasion, nil target when none.
	target   *Hex
	invading []*Hex
	used     int
	maxShips int

	done func()
}

func newExterminate(g *Game, p *Player, efficiency int, done func()) *Exterminate {
	return &Exterminate{game: g, player: p, allowed: 4 - efficiency, done: done}
}

func (c *Exterminate) ID() CommandID { return CommandExterminate }

func (c *Exterminate) Player() *Player { return c.player }

func (c *Exterminate) Run() {
	if c.made >= c.allowed ||
		(len(c.invading) == 0 && len(c.Targets()) == 0) {
		c.Finish()
		return
	}
	if c.target == nil {
		c.player.strategy.ExterminateChooseTarget(c, c.Targets())
		return
	}
	if len(c.invading) > 0 {
		c.player.strategy.ExterminateChooseShips(c, c.InvadingHexes())
	} else {
		// Every invading hex was exhausted; the invasion ends itself.
		c.finalizeInvasion()
		c.Run()
	}
}

// Finish closes any open invasion and ends the command. Closing even an
// empty invasion spends quota, which guarantees termination.
func (c *Exterminate) Finish() {
	c.finalizeInvasion()
	c.done()
}

// Targets lists the systems the player may invade: occupied, not player
// controlled, and adjacent to a friendly hex with uninvaded ships.
func (c *Exterminate) Targets() []*Hex {
	var out []*Hex
	for _, h := range c.game.board.SystemsNotControlledBy(c.player) {
		if c.CanInvade(h) {
			out = append(out, h)
		}
	}
	return out
}

func (c *Exterminate) CanInvade(h *Hex) bool {
	if h == nil || h.ControlledBy(c.player) || !h.Occupied() {
		return false
	}
	for _, n := range h.neighbors {
		if n.ControlledBy(c.player) && n.UninvadedShipCount() > 0 {
			return true
		}
	}
	return false
}

// ParticipatingHexes lists the friendly neighbors that can commit ships
// against the given target.
func (c *Exterminate) ParticipatingHexes(target *Hex) []*Hex {
	if !c.CanInvade(target) {
		return nil
	}
	var out []*Hex
	for _, n := range target.neighbors {
		if n.ControlledBy(c.player) && n.UninvadedShipCount() > 0 {
			out = append(out, n)
		}
	}
	return out
}

// StartInvasion opens an invasion against the chosen target, recording the
// invading set and the total ships it could commit. An illegal choice is
// ignored.
func (c *Exterminate) StartInvasion(target *Hex) {
	if !c.CanInvade(target) {
		return
	}
	c.target = target
	c.invading = c.ParticipatingHexes(target)
	c.used = 0
	c.maxShips = 0
	for _, h := range c.invading {
		c.maxShips += h.UninvadedShipCount()
	}
	c.game.log.Debug().
		Str("player", c.player.name).
		Stringer("target", target.Coord()).
		Int("maxShips", c.maxShips).
		Msg("invasion started")
	c.Run()
}

// CanCommit validates committing n ships from an invading hex.
func (c *Exterminate) CanCommit(from *Hex, n int) bool {
	return c.target != nil &&
		contains(c.invading, from) &&
		n >= 1 &&
		n <= from.UninvadedShipCount()
}

// Commit sends n ships from an invading hex against the target and
// resolves combat immediately: min(attackers, defenders) ships are removed
// from both sides, any attacker surplus lands on the target marked as
// having invaded, and control transfers with the landing. An invading hex
// left empty drops out of the invasion. An illegal choice is ignored.
func (c *Exterminate) Commit(from *Hex, n int) {
	if !c.CanCommit(from, n) {
		return
	}
	c.used += n
	attackers := from.UninvadedShips()[:n]

	losses := 0
	if !c.target.ControlledBy(c.player) && c.target.Occupied() {
		defenders := c.target.Ships()
		losses = min(len(defenders), n)

		fallenDefenders := defenders[:losses]
		c.target.RemoveShips(fallenDefenders)
		for _, s := range fallenDefenders {
			s.SetDeployed(false)
		}

		fallenAttackers := attackers[:losses]
		from.RemoveShips(fallenAttackers)
		for _, s := range fallenAttackers {
			s.SetDeployed(false)
		}
	}

	if n > losses {
		landing := attackers[losses:n]
		for _, s := range landing {
			s.SetInvaded(true)
		}
		from.RemoveShips(landing)
		c.target.AddShips(landing)
		if !c.target.ControlledBy(c.player) && c.target.ShipCount() > 0 {
			c.target.setController(c.player)
		}
	}

	c.game.log.Debug().
		Str("player", c.player.name).
		Stringer("from", from.Coord()).
		Stringer("target", c.target.Coord()).
		Int("committed", n).
		Int("losses", losses).
		Msg("combat resolved")

	if from.ShipCount() == 0 {
		if i := findIndex(c.invading, from); i >= 0 {
			c.invading = append(c.invading[:i], c.invading[i+1:]...)
		}
	}
	c.Run()
}

// FinishCurrentInvasion ends the open invasion and starts the next one if
// quota and targets remain. Stopping early is a legal decision.
func (c *Exterminate) FinishCurrentInvasion() {
	c.finalizeInvasion()
	c.Run()
}

func (c *Exterminate) finalizeInvasion() {
	c.target = nil
	c.invading = nil
	c.used = 0
	c.maxShips = 0
	c.made++
}

// Target returns the hex under invasion, nil when none.
func (c *Exterminate) Target() *Hex { return c.target }

// InvadingHexes returns the friendly hexes still able to commit ships to
// the open invasion.
func (c *Exterminate) InvadingHexes() []*Hex {
	out := make([]*Hex, len(c.invading))
	copy(out, c.invading)
	return out
}

// ShipsUsed is how many ships the open invasion has committed.
func (c *Exterminate) ShipsUsed() int { return c.used }

// MaxShips is the total the open invasion could commit, recorded at start.
func (c *Exterminate) MaxShips() int { return c.maxShips }

func (c *Exterminate) InvasionsMade() int { return c.made }

func (c *Exterminate) InvasionsAllowed() int { return c.allowed }
