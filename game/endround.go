package game

// EndRoundState closes the round: sector scored flags reset, then either
// the game ends (final turn reached or a player wiped off the board) or a
// new round starts with the seating rotated by one and all ship flags
// cleared.
type EndRoundState struct {
	game *Game
}

func NewEndRoundState(g *Game) *EndRoundState {
	return &EndRoundState{game: g}
}

func (s *EndRoundState) Phase() Phase { return PhaseEndRound }

func (s *EndRoundState) Run() {
	g := s.game

	for _, sector := range g.board.Sectors() {
		sector.resetScored()
	}
	g.notifySectorsReset()
	g.notifyRoundEnded()

	if g.turn == MaxTurns || s.anyEliminated() {
		g.transitionTo(NewEndGameState(g))
		g.runState()
		return
	}

	g.rotatePlayers()
	for _, p := range g.players {
		p.resetShipsForNewRound()
	}
	g.incrementTurn()
	g.log.Info().Int("turn", g.turn).Msg("round started")
	g.transitionTo(NewPlanState(g))
	g.runState()
}

func (s *EndRoundState) anyEliminated() bool {
	for _, p := range s.game.players {
		if p.Eliminated() {
			return true
		}
	}
	return false
}
