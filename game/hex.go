package game

import "fmt"

// Coord addresses a hex on the grid. The grid uses offset coordinates:
// neighbor vectors depend on the parity of the column, see NeighborDirection.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Hex is one cell of the map. A hex with level > 0 is a system; the single
// level-3 hex is the Tri-Prime. All ships on a hex share one owner at all
// times, which is what makes the controller field well defined.
type Hex struct {
	x, y       int
	level      int
	triPrime   bool
	neighbors  []*Hex
	controller *Player
	ships      []*Ship

	// onUpdate fires after any occupancy or control change. Wired by the
	// session after board construction; nil until then.
	onUpdate func(*Hex)
}

func newHex(x, y int) *Hex {
	return &Hex{x: x, y: y}
}

func (h *Hex) X() int { return h.x }
func (h *Hex) Y() int { return h.y }

func (h *Hex) Coord() Coord { return Coord{X: h.x, Y: h.y} }

func (h *Hex) Level() int { return h.level }

// setSystem makes the hex a system of the given level. Level 3 marks the
// Tri-Prime.
func (h *Hex) setSystem(level int) {
	h.level = level
	h.triPrime = level == 3
}

func (h *Hex) IsSystem() bool { return h.level > 0 }

func (h *Hex) IsTriPrime() bool { return h.triPrime }

func (h *Hex) Neighbors() []*Hex { return h.neighbors }

func (h *Hex) addNeighbor(n *Hex) {
	for _, existing := range h.neighbors {
		if existing == n {
			return
		}
	}
	h.neighbors = append(h.neighbors, n)
}

func (h *Hex) removeNeighbor(n *Hex) {
	if i := findIndex(h.neighbors, n); i >= 0 {
		h.neighbors = append(h.neighbors[:i], h.neighbors[i+1:]...)
	}
}

func (h *Hex) IsNeighbor(n *Hex) bool {
	return findIndex(h.neighbors, n) >= 0
}

func (h *Hex) Occupied() bool { return h.controller != nil }

func (h *Hex) Controller() *Player { return h.controller }

func (h *Hex) ControlledBy(p *Player) bool { return h.controller == p }

// setController transfers control of the hex. Used directly only by combat
// resolution; everywhere else control follows occupancy.
func (h *Hex) setController(p *Player) {
	h.controller = p
	h.notify()
}

// Ships returns a copy of the occupying ships in insertion order.
func (h *Hex) Ships() []*Ship {
	out := make([]*Ship, len(h.ships))
	copy(out, h.ships)
	return out
}

func (h *Hex) ShipCount() int { return len(h.ships) }

func (h *Hex) UnmovedShips() []*Ship {
	var out []*Ship
	for _, s := range h.ships {
		if !s.moved {
			out = append(out, s)
		}
	}
	return out
}

func (h *Hex) UnmovedShipCount() int { return len(h.UnmovedShips()) }

func (h *Hex) UninvadedShips() []*Ship {
	var out []*Ship
	for _, s := range h.ships {
		if !s.invaded {
			out = append(out, s)
		}
	}
	return out
}

func (h *Hex) UninvadedShipCount() int { return len(h.UninvadedShips()) }

// AddShip appends a ship; an unoccupied hex becomes controlled by the
// ship's owner.
func (h *Hex) AddShip(s *Ship) {
	h.ships = append(h.ships, s)
	if h.controller == nil {
		h.controller = s.owner
	}
	h.notify()
}

// AddShips appends ships in order; an unoccupied hex becomes controlled by
// the first ship's owner.
func (h *Hex) AddShips(ships []*Ship) {
	if len(ships) == 0 {
		return
	}
	h.ships = append(h.ships, ships...)
	if h.controller == nil {
		h.controller = ships[0].owner
	}
	h.notify()
}

// RemoveShip removes a ship; the hex loses its controller when emptied.
func (h *Hex) RemoveShip(s *Ship) {
	if i := findIndex(h.ships, s); i >= 0 {
		h.ships = append(h.ships[:i], h.ships[i+1:]...)
	}
	if len(h.ships) == 0 {
		h.controller = nil
	}
	h.notify()
}

func (h *Hex) RemoveShips(ships []*Ship) {
	if len(ships) == 0 {
		return
	}
	for _, s := range ships {
		if i := findIndex(h.ships, s); i >= 0 {
			h.ships = append(h.ships[:i], h.ships[i+1:]...)
		}
	}
	if len(h.ships) == 0 {
		h.controller = nil
	}
	h.notify()
}

// Capacity is the number of ships the hex can sustain past round end.
func (h *Hex) Capacity() int { return h.level + 1 }

// removeUnsustainable drops the oldest-inserted ships until the hex is
// within capacity, marking them undeployed. Oldest-first keeps the sweep
// deterministic.
func (h *Hex) removeUnsustainable() {
	for len(h.ships) > h.Capacity() {
		s := h.ships[0]
		h.ships = h.ships[1:]
		s.SetDeployed(false)
	}
	if len(h.ships) == 0 {
		h.controller = nil
	}
	h.notify()
}

func (h *Hex) notify() {
	if h.onUpdate != nil {
		h.onUpdate(h)
	}
}

// Neighbor direction deltas for directions 0..5, indexed by column parity.
var (
	evenColumnDeltas = [6][2]int{{1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {0, 1}, {1, 0}}
	oddColumnDeltas  = [6][2]int{{1, 0}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// NeighborDirection returns which of the six hex directions b lies in
// relative to a. The delta tables differ by column parity, inherent to the
// offset-coordinate scheme. Returns an error if the coordinates are not
// direct neighbors.
func NeighborDirection(a, b Coord) (int, error) {
	dx := b.X - a.X
	dy := b.Y - a.Y

	deltas := &evenColumnDeltas
	if a.X%2 != 0 {
		deltas = &oddColumnDeltas
	}
	for dir, d := range deltas {
		if dx == d[0] && dy == d[1] {
			return dir, nil
		}
	}
	return -1, fmt.Errorf("hexes %v and %v are not neighbors", a, b)
}
