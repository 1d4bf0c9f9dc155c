package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSectorScore(t *testing.T) {
	b := NewBoard(rand.New(rand.NewSource(7)))
	p := newPlayer("blue", Blue)
	q := newPlayer("green", Green)

	var sector *Sector
	for _, s := range b.Sectors() {
		if !s.Central() {
			sector = s
			break
		}
	}
	require.NotNil(t, sector)

	// p holds the level-2 system, q one of the level-1 systems.
	qPlaced := false
	for _, h := range sector.Systems() {
		switch h.Level() {
		case 2:
			h.AddShip(p.Ships()[0])
		case 1:
			if !qPlaced {
				h.AddShip(q.Ships()[0])
				qPlaced = true
			}
		}
	}

	assert.Equal(t, 2, sector.PotentialScore(p))
	assert.Equal(t, 1, sector.PotentialScore(q))

	sector.Score(false)
	assert.Equal(t, 2, p.Score())
	assert.Equal(t, 1, q.Score())
	assert.True(t, sector.Scored())

	sector.resetScored()
	assert.False(t, sector.Scored())

	// End-of-game scoring doubles and leaves the flag alone.
	sector.Score(true)
	assert.Equal(t, 6, p.Score())
	assert.Equal(t, 3, q.Score())
	assert.False(t, sector.Scored())
}

func TestSectorOccupied(t *testing.T) {
	b := NewBoard(rand.New(rand.NewSource(7)))
	p := newPlayer("blue", Blue)

	sector := b.Sectors()[0]
	assert.False(t, sector.Occupied())

	sector.Systems()[0].AddShip(p.Ships()[0])
	assert.True(t, sector.Occupied())
}
