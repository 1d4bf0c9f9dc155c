package game

// Sector groups the system hexes that are scored together. Nine sectors
// partition the map's systems; the central one holds only the Tri-Prime.
type Sector struct {
	id      int
	systems []*Hex
	central bool
	scored  bool
}

func newSector(id int) *Sector {
	return &Sector{id: id}
}

func (s *Sector) ID() int { return s.id }

func (s *Sector) Central() bool { return s.central }

// Systems returns the sector's system hexes in placement order.
func (s *Sector) Systems() []*Hex { return s.systems }

func (s *Sector) addSystem(h *Hex) {
	s.systems = append(s.systems, h)
}

func (s *Sector) Scored() bool { return s.scored }

func (s *Sector) resetScored() { s.scored = false }

// Occupied reports whether any system in the sector is occupied.
func (s *Sector) Occupied() bool {
	for _, h := range s.systems {
		if h.Occupied() {
			return true
		}
	}
	return false
}

// Score credits each occupied system's controller with the system's level,
// doubled at end of game. A non-final scoring marks the sector as scored
// for the round; the final doubled pass does not, nothing reads the flag
// after the game ends.
func (s *Sector) Score(endOfGame bool) {
	multiplier := 1
	if endOfGame {
		multiplier = 2
	}
	for _, h := range s.systems {
		if h.Occupied() {
			h.Controller().AddToScore(h.Level() * multiplier)
		}
	}
	if !endOfGame {
		s.scored = true
	}
}

// PotentialScore is the score the player would gain from this sector, used
// by decision making to rank exploit candidates. Pure query.
func (s *Sector) PotentialScore(p *Player) int {
	total := 0
	for _, h := range s.systems {
		if h.ControlledBy(p) {
			total += h.Level()
		}
	}
	return total
}
