package game

// ShipsPerPlayer is the fixed pool size every player starts with. Ships are
// never destroyed, only flagged undeployed when lost.
const ShipsPerPlayer = 15

// Ship is the minimal unit of military strength. Identity is (owner, pool
// index); the index is stable for the whole game and is what snapshots use
// to reference a ship.
type Ship struct {
	owner    *Player
	index    int
	deployed bool
	moved    bool
	invaded  bool
}

func newShip(owner *Player, index int) *Ship {
	return &Ship{owner: owner, index: index}
}

func (s *Ship) Owner() *Player { return s.owner }

// Index returns the ship's position in its owner's pool.
func (s *Ship) Index() int { return s.index }

func (s *Ship) Deployed() bool { return s.deployed }

// SetDeployed flags the ship as on or off the board. An undeployed ship
// cannot have moved or invaded, so clearing deployment clears both flags.
func (s *Ship) SetDeployed(deployed bool) {
	s.deployed = deployed
	if !deployed {
		s.moved = false
		s.invaded = false
	}
}

func (s *Ship) Moved() bool { return s.moved }

func (s *Ship) SetMoved(moved bool) { s.moved = moved }

func (s *Ship) Invaded() bool { return s.invaded }

func (s *Ship) SetInvaded(invaded bool) { s.invaded = invaded }

// resetForNewRound clears the per-round action flags.
func (s *Ship) resetForNewRound() {
	s.moved = false
	s.invaded = false
}
