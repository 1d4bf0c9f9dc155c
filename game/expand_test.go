package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commandGame builds a suspended game whose board can be staged by hand:
// three players with inert strategies, no deployment run.
func commandGame(t *testing.T) *Game {
	t.Helper()
	return newTestGame(t, 11, &scripted{}, &scripted{}, &scripted{})
}

// stageShips deploys n pool ships of p onto the hex directly.
func stageShips(p *Player, h *Hex, n int) {
	pool := p.UndeployedShips()
	for i := 0; i < n; i++ {
		pool[i].SetDeployed(true)
		h.AddShip(pool[i])
	}
}

func TestExpandQuota(t *testing.T) {
	g := commandGame(t)
	p := g.Players()[0]
	sys := g.Board().Systems()[0]
	stageShips(p, sys, 1)

	var finished int
	cmd := newExpand(g, p, 2, func() { finished++ })

	assert.Equal(t, 2, cmd.Total())
	assert.Equal(t, []*Hex{sys}, cmd.Candidates())

	// Over-quota and off-board requests are no-ops.
	assert.False(t, cmd.CanAddShips(sys, 3))
	assert.False(t, cmd.CanAddShips(sys, 0))
	assert.False(t, cmd.CanAddShips(nil, 1))
	cmd.AddShips(sys, 3)
	assert.Equal(t, 0, cmd.Added())

	cmd.AddShips(sys, 2)
	assert.Equal(t, 2, cmd.Added())
	assert.Equal(t, 0, cmd.Remaining())
	assert.Equal(t, 3, sys.ShipCount())
	assert.Equal(t, 1, finished, "exhausted quota must end the command")

	// Spent command accepts nothing more.
	cmd.AddShips(sys, 1)
	assert.Equal(t, 3, sys.ShipCount())
}

func TestExpandQuotaCappedByPool(t *testing.T) {
	g := commandGame(t)
	p := g.Players()[0]
	sys := g.Board().Systems()[0]

	// Deploy all but one ship; the quota cannot exceed the pool.
	stageShips(p, sys, ShipsPerPlayer-1)

	cmd := newExpand(g, p, 1, func() {})
	assert.Equal(t, 1, cmd.Total())
}

func TestExpandRejectsForeignSystems(t *testing.T) {
	g := commandGame(t)
	p, q := g.Players()[0], g.Players()[1]
	mine := g.Board().Systems()[0]
	theirs := g.Board().Systems()[1]
	stageShips(p, mine, 1)
	stageShips(q, theirs, 1)

	cmd := newExpand(g, p, 3, func() {})
	assert.False(t, cmd.CanAddShips(theirs, 1))
	cmd.AddShips(theirs, 1)
	assert.Equal(t, 1, theirs.ShipCount())
	assert.Equal(t, 0, cmd.Added())
}

func TestExpandFinishesWhenNoCandidates(t *testing.T) {
	g := commandGame(t)
	p := g.Players()[0]

	var finished int
	cmd := newExpand(g, p, 1, func() { finished++ })
	cmd.Run()

	require.Equal(t, 1, finished)
}

// A player with nothing left in the pool gets a zero quota, and the
// command still runs and ends cleanly.
func TestExpandZeroQuotaFromEmptyPool(t *testing.T) {
	g := commandGame(t)
	p := g.Players()[0]
	sys := g.Board().Systems()[0]
	stageShips(p, sys, ShipsPerPlayer)

	var finished int
	cmd := newExpand(g, p, 1, func() { finished++ })
	assert.Equal(t, 0, cmd.Total())
	cmd.Run()
	assert.Equal(t, 1, finished)
}
