package game

// shipsPerPlacement is how many ships land on each initial placement.
const shipsPerPlacement = 2

// DeployState is the opening phase: each player places two ships twice, in
// snake order (0,1,2,2,1,0), onto a free level-1 system in a sector nobody
// occupies yet.
type DeployState struct {
	game    *Game
	counter int
	// occupiedSectors records which sectors received an initial placement,
	// in placement order.
	occupiedSectors []*Sector
}

func NewDeployState(g *Game) *DeployState {
	return &DeployState{game: g}
}

func (s *DeployState) Phase() Phase { return PhaseDeploy }

func (s *DeployState) Run() {
	players := s.game.players
	if s.counter < len(players)*shipsPerPlacement {
		// Snake order: 0,1,2 then 2,1,0.
		playerIndex := min(s.counter, 2*len(players)-1-s.counter)
		s.game.setCurrentPlayerIndex(playerIndex)
		p := s.game.current
		p.strategy.DeployChooseHex(s, s.ValidHexes())
	} else {
		s.game.notifyDeployFinished()
		s.game.transitionTo(NewPlanState(s.game))
		s.game.runState()
	}
}

// ValidHexes lists the level-1 systems of sectors that have no occupied
// hex yet. The central sector is never a valid opening.
func (s *DeployState) ValidHexes() []*Hex {
	var out []*Hex
	for _, sector := range s.game.board.Sectors() {
		if sector.central || sector.Occupied() {
			continue
		}
		for _, h := range sector.systems {
			if h.Level() == 1 {
				out = append(out, h)
			}
		}
	}
	return out
}

// CanDeploy reports whether the hex is a legal opening placement: an
// unoccupied level-1 system in a fully unoccupied sector.
func (s *DeployState) CanDeploy(target *Hex) bool {
	if target == nil || target.Level() != 1 || target.Occupied() {
		return false
	}
	sector := s.game.board.SectorOf(target)
	return sector != nil && !sector.Occupied()
}

// DeployShips places two of the current player's undeployed ships on the
// chosen hex. An illegal choice is ignored.
func (s *DeployState) DeployShips(chosen *Hex) {
	if !s.CanDeploy(chosen) {
		return
	}
	sector := s.game.board.SectorOf(chosen)
	s.occupiedSectors = append(s.occupiedSectors, sector)

	p := s.game.current
	pool := p.UndeployedShips()
	for i := 0; i < shipsPerPlacement; i++ {
		ship := pool[i]
		ship.SetDeployed(true)
		chosen.AddShip(ship)
	}
	s.counter++
	s.game.log.Debug().
		Str("player", p.name).
		Stringer("hex", chosen.Coord()).
		Msg("initial deployment")
	s.Run()
}

// OccupiedSectors returns the sectors claimed so far, in placement order.
func (s *DeployState) OccupiedSectors() []*Sector {
	return s.occupiedSectors
}
