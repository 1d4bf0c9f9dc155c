package game

// PlanState has each player, in seat order, secretly choose the order in
// which they will perform the three commands this round.
type PlanState struct {
	game    *Game
	counter int
}

func NewPlanState(g *Game) *PlanState {
	return &PlanState{game: g}
}

func (s *PlanState) Phase() Phase { return PhasePlan }

func (s *PlanState) Run() {
	if s.counter < len(s.game.players) {
		s.game.setCurrentPlayerIndex(s.counter)
		s.game.current.strategy.PlanChooseCommands(s)
	} else {
		s.game.transitionTo(NewPerformState(s.game))
		s.game.runState()
	}
}

// PlanCommands records the current player's command order. Anything other
// than a permutation of the three commands is ignored.
func (s *PlanState) PlanCommands(commands []CommandID) {
	if !isCommandPermutation(commands) {
		return
	}
	p := s.game.current
	p.setChosenCommands(commands)
	s.counter++
	s.game.log.Debug().
		Str("player", p.name).
		Interface("commands", commands).
		Msg("commands planned")
	s.Run()
}

func isCommandPermutation(commands []CommandID) bool {
	if len(commands) != 3 {
		return false
	}
	var seen [4]bool
	for _, c := range commands {
		if c < CommandExpand || c > CommandExterminate || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}
