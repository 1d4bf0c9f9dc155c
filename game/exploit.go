package game

// ExploitState is the scoring phase. Over-capacity ships are swept first,
// then each player in seat order picks one unscored sector they hold
// systems in and scores it. Players with nothing to score are skipped.
type ExploitState struct {
	game    *Game
	counter int
	swept   bool
}

func NewExploitState(g *Game) *ExploitState {
	return &ExploitState{game: g}
}

func (s *ExploitState) Phase() Phase { return PhaseExploit }

func (s *ExploitState) Run() {
	if !s.swept {
		s.game.board.SweepOverCapacity()
		s.swept = true
	}

	players := s.game.players
	for s.counter < len(players) {
		s.game.setCurrentPlayerIndex(s.counter)
		p := s.game.current
		candidates := s.Candidates(p)
		if len(candidates) == 0 {
			s.counter++
			continue
		}
		p.strategy.ExploitChooseSector(s, candidates)
		return
	}

	s.game.transitionTo(NewEndRoundState(s.game))
	s.game.runState()
}

// Candidates lists the sectors the player may score: not yet scored this
// round and holding at least one system the player controls.
func (s *ExploitState) Candidates(p *Player) []*Sector {
	var out []*Sector
	for _, sector := range s.game.board.Sectors() {
		if !sector.Scored() && sector.PotentialScore(p) > 0 {
			out = append(out, sector)
		}
	}
	return out
}

// ChooseSector scores the chosen sector for the current player. An illegal
// choice is ignored.
func (s *ExploitState) ChooseSector(sector *Sector) {
	p := s.game.current
	if sector == nil || sector.Scored() || sector.PotentialScore(p) == 0 {
		return
	}
	sector.Score(false)
	s.game.notifySectorScored(sector, p)
	s.game.log.Debug().
		Str("player", p.name).
		Int("sector", sector.id).
		Msg("sector scored")
	s.counter++
	s.Run()
}
