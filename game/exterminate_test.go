package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invasionSite finds a non-central system and one of its non-system
// neighbors to stage attacks from.
func invasionSite(t *testing.T, g *Game) (target, from *Hex) {
	t.Helper()
	for _, sys := range g.Board().Systems() {
		if sys.IsTriPrime() {
			continue
		}
		for _, n := range sys.Neighbors() {
			if !n.IsSystem() {
				return sys, n
			}
		}
	}
	t.Fatal("no system with a plain neighbor")
	return nil, nil
}

func TestExterminateAttackerRepelled(t *testing.T) {
	g := commandGame(t)
	p, q := g.Players()[0], g.Players()[1]
	target, from := invasionSite(t, g)
	stageShips(q, target, 5)
	stageShips(p, from, 3)

	var finished int
	cmd := newExterminate(g, p, 1, func() { finished++ })
	assert.Equal(t, 3, cmd.InvasionsAllowed())
	assert.Equal(t, []*Hex{target}, cmd.Targets())

	cmd.StartInvasion(target)
	assert.Same(t, target, cmd.Target())
	assert.Equal(t, 3, cmd.MaxShips())

	// Three attackers against five defenders: both sides lose three, the
	// defense holds.
	cmd.Commit(from, 3)
	assert.Equal(t, 2, target.ShipCount())
	assert.True(t, target.ControlledBy(q))
	assert.False(t, from.Occupied())
	assert.Len(t, p.UndeployedShips(), ShipsPerPlayer)
	assert.Len(t, q.UndeployedShips(), ShipsPerPlayer-2)
	assert.Equal(t, 1, finished, "no remaining targets ends the command")
}

func TestExterminateConquest(t *testing.T) {
	g := commandGame(t)
	p, q := g.Players()[0], g.Players()[1]
	target, from := invasionSite(t, g)
	stageShips(q, target, 2)
	stageShips(p, from, 5)

	var finished int
	cmd := newExterminate(g, p, 1, func() { finished++ })
	cmd.StartInvasion(target)

	// Five against two: the surplus lands and takes the system.
	cmd.Commit(from, 5)
	assert.Equal(t, 3, target.ShipCount())
	assert.True(t, target.ControlledBy(p))
	for _, s := range target.Ships() {
		assert.Same(t, p, s.Owner())
		assert.True(t, s.Invaded())
	}
	assert.False(t, from.Occupied())
	assert.Len(t, q.UndeployedShips(), ShipsPerPlayer)
	assert.Equal(t, 1, finished)
}

func TestExterminateMultipleSources(t *testing.T) {
	g := commandGame(t)
	p, q := g.Players()[0], g.Players()[1]
	target, from1 := invasionSite(t, g)

	var from2 *Hex
	for _, n := range target.Neighbors() {
		if n != from1 && !n.IsSystem() {
			from2 = n
			break
		}
	}
	require.NotNil(t, from2)

	stageShips(q, target, 3)
	stageShips(p, from1, 2)
	stageShips(p, from2, 2)

	cmd := newExterminate(g, p, 2, func() {})
	cmd.StartInvasion(target)
	assert.Len(t, cmd.InvadingHexes(), 2)
	assert.Equal(t, 4, cmd.MaxShips())

	cmd.Commit(from1, 2)
	assert.Equal(t, 1, target.ShipCount())
	assert.Equal(t, 2, cmd.ShipsUsed())

	cmd.Commit(from2, 2)
	assert.Equal(t, 1, target.ShipCount())
	assert.True(t, target.ControlledBy(p))
	assert.Equal(t, 1, cmd.InvasionsMade())
}

func TestExterminateCommitValidation(t *testing.T) {
	g := commandGame(t)
	p, q := g.Players()[0], g.Players()[1]
	target, from := invasionSite(t, g)
	stageShips(q, target, 1)
	stageShips(p, from, 2)

	cmd := newExterminate(g, p, 1, func() {})

	// No invasion open yet.
	assert.False(t, cmd.CanCommit(from, 1))
	cmd.Commit(from, 1)
	assert.Equal(t, 2, from.ShipCount())

	cmd.StartInvasion(target)
	assert.False(t, cmd.CanCommit(from, 0))
	assert.False(t, cmd.CanCommit(from, 3))
	assert.False(t, cmd.CanCommit(target, 1))
	assert.True(t, cmd.CanCommit(from, 2))
}

func TestExterminateTargetsAreSystemsOnly(t *testing.T) {
	g := commandGame(t)
	p, q := g.Players()[0], g.Players()[1]
	target, from := invasionSite(t, g)

	// q sits on a plain hex next to p; plain hexes are never targets.
	var plain *Hex
	for _, n := range from.Neighbors() {
		if n != target && !n.IsSystem() {
			plain = n
			break
		}
	}
	require.NotNil(t, plain)
	stageShips(q, plain, 1)
	stageShips(p, from, 2)

	cmd := newExterminate(g, p, 1, func() {})
	assert.NotContains(t, cmd.Targets(), plain)
}

func TestExterminateFinishesWithoutTargets(t *testing.T) {
	g := commandGame(t)
	p := g.Players()[0]

	var finished int
	cmd := newExterminate(g, p, 1, func() { finished++ })
	cmd.Run()
	assert.Equal(t, 1, finished)
}
