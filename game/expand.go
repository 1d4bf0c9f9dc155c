package game

// Expand lets the player reinforce controlled systems with ships from the
// pool. The quota is min(4 - efficiency, undeployed ships), fixed at
// construction.
type Expand struct {
	game   *Game
	player *Player
	total  int
	added  int
	done   func()
}

func newExpand(g *Game, p *Player, efficiency int, done func()) *Expand {
	total := min(4-efficiency, len(p.UndeployedShips()))
	return &Expand{game: g, player: p, total: total, done: done}
}

func (c *Expand) ID() CommandID { return CommandExpand }

func (c *Expand) Player() *Player { return c.player }

func (c *Expand) Run() {
	if c.added == c.total || len(c.Candidates()) == 0 {
		c.Finish()
		return
	}
	c.player.strategy.ExpandChooseHex(c, c.Candidates())
}

// Finish ends the command and hands over to the next player.
func (c *Expand) Finish() {
	c.done()
}

// Candidates lists the systems the player may expand onto.
func (c *Expand) Candidates() []*Hex {
	return c.game.board.SystemsControlledBy(c.player)
}

// CanAddShips validates an expansion: a controlled, occupied system and a
// count within the remaining quota.
func (c *Expand) CanAddShips(target *Hex, n int) bool {
	return target != nil &&
		target.IsSystem() &&
		target.Occupied() &&
		target.ControlledBy(c.player) &&
		n >= 1 &&
		n <= c.Remaining()
}

// AddShips deploys n pool ships onto the chosen system. An illegal choice
// is ignored.
func (c *Expand) AddShips(target *Hex, n int) {
	if !c.CanAddShips(target, n) {
		return
	}
	pool := c.player.UndeployedShips()
	for i := 0; i < n; i++ {
		ship := pool[i]
		ship.SetDeployed(true)
		target.AddShip(ship)
	}
	c.added += n
	c.game.log.Debug().
		Str("player", c.player.name).
		Stringer("hex", target.Coord()).
		Int("ships", n).
		Msg("fleet expanded")
	c.Run()
}

// Total is the full quota for this command.
func (c *Expand) Total() int { return c.total }

// Added is how many ships have been deployed so far.
func (c *Expand) Added() int { return c.added }

// Remaining is the unspent quota.
func (c *Expand) Remaining() int { return c.total - c.added }
