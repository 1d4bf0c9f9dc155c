package game

// EndGameState is terminal: every sector is scored once more at double
// value, then the winner is announced. The doubled pass does not mark
// sectors as scored; nothing reads the flag after this point.
type EndGameState struct {
	game   *Game
	winner *Player
}

func NewEndGameState(g *Game) *EndGameState {
	return &EndGameState{game: g}
}

func (s *EndGameState) Phase() Phase { return PhaseEndGame }

func (s *EndGameState) Run() {
	if s.winner == nil {
		for _, sector := range s.game.board.Sectors() {
			sector.Score(true)
		}
		s.winner = s.determineWinner()
	}
	s.game.log.Info().
		Str("winner", s.winner.name).
		Int("score", s.winner.score).
		Msg("game over")
	s.game.notifyGameEnded(s.winner)
}

// determineWinner returns the player with the highest score. Ties go to
// the earliest seat; the game rules define no tiebreak, so seat order is
// as arbitrary as anything else.
func (s *EndGameState) determineWinner() *Player {
	if len(s.game.players) == 0 {
		panic("no players available to determine a winner")
	}
	best := s.game.players[0]
	for _, p := range s.game.players[1:] {
		if p.score > best.score {
			best = p
		}
	}
	return best
}

// Winner returns the winning player once the state has run.
func (s *EndGameState) Winner() *Player { return s.winner }
