package game

import (
	"golang.org/x/exp/rand"
)

const (
	gridColumns = 9
	gridRows    = 5 // odd columns; even columns get one more
	numSectors  = 9

	// centralSector is the sector holding only the Tri-Prime.
	centralSector = 4
)

var triPrimeCoord = Coord{X: 4, Y: 2}

// mergedCoords are the four central cells fused into the single Tri-Prime.
var mergedCoords = []Coord{{3, 2}, {4, 2}, {4, 3}, {5, 2}}

// Board owns the hex grid and the sector partition. Topology is fixed at
// construction; only occupancy mutates afterwards.
type Board struct {
	grid     [gridColumns][]*Hex
	sectors  [numSectors]*Sector
	bySystem map[*Hex]*Sector
	systems  []*Hex
	triPrime *Hex
}

// columnSize is the number of rows in column x: 6 for even columns, 5 for
// odd ones.
func columnSize(x int) int {
	return gridRows + ((x & 1) ^ 1)
}

// NewBoard generates a board: grid and neighbor graph, Tri-Prime merge, and
// a random sector layout dealt from the rng. The rng must not be reseeded
// mid-game; reusing the same seed reproduces the same layout.
func NewBoard(rng *rand.Rand) *Board {
	b := newBareBoard()
	b.dealSectors(rng)
	return b
}

// newBareBoard builds the deterministic part of the board: the grid, the
// full neighbor graph, the Tri-Prime merge and the central sector. Sector
// cards are dealt separately so a snapshot can reapply a recorded layout.
func newBareBoard() *Board {
	b := &Board{bySystem: make(map[*Hex]*Sector)}

	for x := 0; x < gridColumns; x++ {
		b.grid[x] = make([]*Hex, columnSize(x))
		for y := range b.grid[x] {
			b.grid[x][y] = newHex(x, y)
		}
	}

	// Neighbor offsets depend on column parity (offset coordinates).
	offsets := [2][6][2]int{
		{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, -1}, {-1, -1}}, // even columns
		{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, 1}},   // odd columns
	}
	for x := 0; x < gridColumns; x++ {
		for y := 0; y < columnSize(x); y++ {
			for _, off := range offsets[x&1] {
				nx, ny := x+off[0], y+off[1]
				if nx >= 0 && nx < gridColumns && ny >= 0 && ny < columnSize(nx) {
					b.grid[x][y].addNeighbor(b.grid[nx][ny])
				}
			}
		}
	}

	b.mergeTriPrime()

	b.sectors[centralSector] = newSector(centralSector)
	b.sectors[centralSector].central = true
	b.sectors[centralSector].addSystem(b.triPrime)
	b.bySystem[b.triPrime] = b.sectors[centralSector]

	return b
}

// mergeTriPrime fuses the four central cells into one level-3 hex that
// inherits the union of their outer neighbors. The absorbed cells are
// removed from the grid entirely.
func (b *Board) mergeTriPrime() {
	tri := b.grid[triPrimeCoord.X][triPrimeCoord.Y]
	tri.setSystem(3)
	b.systems = append(b.systems, tri)
	b.triPrime = tri

	merged := make([]*Hex, len(mergedCoords))
	for i, c := range mergedCoords {
		merged[i] = b.grid[c.X][c.Y]
	}

	var outer []*Hex
	for _, m := range merged {
		for _, n := range m.neighbors {
			if !contains(merged, n) && !contains(outer, n) {
				outer = append(outer, n)
			}
		}
	}

	for _, n := range outer {
		for _, m := range merged {
			n.removeNeighbor(m)
		}
		n.addNeighbor(tri)
	}
	tri.neighbors = outer

	for _, c := range mergedCoords {
		if c != triPrimeCoord {
			b.grid[c.X][c.Y] = nil
		}
	}
}

// Sector cards, normalized to the top-left corner of the board with the
// orientation band up. Each card holds two level-1 systems then one
// level-2 system.
var topBottomCards = [6][3]Coord{
	{{1, 0}, {2, 1}, {0, 0}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 0}, {0, 1}, {2, 1}},
	{{0, 0}, {0, 1}, {1, 0}},
	{{0, 0}, {2, 0}, {1, 0}},
	{{2, 0}, {2, 1}, {1, 0}},
}

var sideCards = [2][3]Coord{
	{{1, 0}, {2, 0}, {0, 0}},
	{{0, 0}, {2, 0}, {1, 1}},
}

// dealSectors assigns the six top/bottom cards to shuffled edge slots and
// the two side cards to the fixed side slots, mirroring coordinates for
// bottom placements and flipping side cards on a coin toss.
func (b *Board) dealSectors(rng *rand.Rand) {
	slots := []int{0, 1, 2, 6, 7, 8}
	rng.Shuffle(len(slots), func(i, j int) {
		slots[i], slots[j] = slots[j], slots[i]
	})

	for i, card := range topBottomCards {
		slot := slots[i]
		coords := card // value copy, safe to mutate

		// Bottom slots mirror the card through the board center.
		if slot >= 6 {
			for j := range coords {
				coords[j].X = 6 + (2 - coords[j].X)
				coords[j].Y = ((coords[j].X & 1) ^ 1) - coords[j].Y
			}
		}
		for j := range coords {
			coords[j].Y += 2 * (slot % 6)
		}

		b.placeSector(slot, coords)
	}

	sideSlots := [2]int{3, 5}
	for i, card := range sideCards {
		slot := sideSlots[i]
		coords := card

		// 50% chance to flip the card.
		if rng.Intn(2) == 0 {
			for j := range coords {
				coords[j].X = 2 - coords[j].X
				coords[j].Y = (coords[j].X & 1) - coords[j].Y
			}
		}
		for j := range coords {
			coords[j].X += 3
			coords[j].Y += 2 * (slot % 3)
		}

		b.placeSector(slot, coords)
	}
}

// placeSector levels the card's three hexes (two level-1, one level-2) and
// registers them under a new sector.
func (b *Board) placeSector(id int, coords [3]Coord) {
	sector := newSector(id)
	for j, c := range coords {
		h := b.grid[c.X][c.Y]
		level := 1
		if j == 2 {
			level = 2
		}
		h.setSystem(level)
		sector.addSystem(h)
		b.bySystem[h] = sector
		b.systems = append(b.systems, h)
	}
	b.sectors[id] = sector
}

// HexAt returns the hex at (x, y), or nil for out-of-range or merged-away
// coordinates.
func (b *Board) HexAt(x, y int) *Hex {
	if x < 0 || x >= gridColumns || y < 0 || y >= len(b.grid[x]) {
		return nil
	}
	return b.grid[x][y]
}

// Hexes returns every live hex in column-major order.
func (b *Board) Hexes() []*Hex {
	var out []*Hex
	for x := range b.grid {
		for _, h := range b.grid[x] {
			if h != nil {
				out = append(out, h)
			}
		}
	}
	return out
}

// Sectors returns the nine sectors indexed by id.
func (b *Board) Sectors() []*Sector {
	return b.sectors[:]
}

// SectorOf returns the sector a system hex belongs to, or nil for
// non-system hexes.
func (b *Board) SectorOf(h *Hex) *Sector {
	return b.bySystem[h]
}

// Systems returns all system hexes in placement order.
func (b *Board) Systems() []*Hex {
	return b.systems
}

func (b *Board) TriPrime() *Hex {
	return b.triPrime
}

// SystemsControlledBy filters system hexes on live controller state.
func (b *Board) SystemsControlledBy(p *Player) []*Hex {
	var out []*Hex
	for _, h := range b.systems {
		if h.ControlledBy(p) {
			out = append(out, h)
		}
	}
	return out
}

func (b *Board) SystemsNotControlledBy(p *Player) []*Hex {
	var out []*Hex
	for _, h := range b.systems {
		if !h.ControlledBy(p) {
			out = append(out, h)
		}
	}
	return out
}

// HexesOccupiedBy returns every hex, system or not, the player controls.
func (b *Board) HexesOccupiedBy(p *Player) []*Hex {
	var out []*Hex
	for _, h := range b.Hexes() {
		if h.ControlledBy(p) {
			out = append(out, h)
		}
	}
	return out
}

// SweepOverCapacity removes over-capacity ships from every hex, oldest
// first, marking them undeployed. Runs once per round, before exploitation.
func (b *Board) SweepOverCapacity() {
	for _, h := range b.Hexes() {
		h.removeUnsustainable()
	}
}

// setUpdateHook installs a change callback on every hex.
func (b *Board) setUpdateHook(fn func(*Hex)) {
	for _, h := range b.Hexes() {
		h.onUpdate = fn
	}
}
