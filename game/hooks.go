package game

// Hooks are optional observer callbacks the session fires on state
// changes. Any field may be nil. Callbacks run synchronously on the
// engine's logical thread and must not call back into mutators.
type Hooks struct {
	TurnChanged          func(turn int)
	CurrentPlayerChanged func(p *Player)
	PlayerOrderChanged   func(players []*Player)
	HexUpdated           func(h *Hex)
	ScoreChanged         func(p *Player)
	SectorScored         func(s *Sector, by *Player)
	SectorsReset         func()
	DeployFinished       func()
	PerformFinished      func()
	SubPhaseStarted      func(phase int, efficiencies map[CommandID]int)
	RoundEnded           func(turn int)
	GameEnded            func(winner *Player)
	Thinking             func(p *Player, activity string)
	DoneThinking         func(p *Player)
}

func (g *Game) notifyTurnChanged() {
	if g.hooks.TurnChanged != nil {
		g.hooks.TurnChanged(g.turn)
	}
}

func (g *Game) notifyCurrentPlayer() {
	if g.hooks.CurrentPlayerChanged != nil {
		g.hooks.CurrentPlayerChanged(g.current)
	}
}

func (g *Game) notifyPlayerOrder() {
	if g.hooks.PlayerOrderChanged != nil {
		g.hooks.PlayerOrderChanged(g.Players())
	}
}

func (g *Game) notifySectorScored(s *Sector, by *Player) {
	if g.hooks.SectorScored != nil {
		g.hooks.SectorScored(s, by)
	}
}

func (g *Game) notifySectorsReset() {
	if g.hooks.SectorsReset != nil {
		g.hooks.SectorsReset()
	}
}

func (g *Game) notifyDeployFinished() {
	if g.hooks.DeployFinished != nil {
		g.hooks.DeployFinished()
	}
}

func (g *Game) notifyPerformFinished() {
	if g.hooks.PerformFinished != nil {
		g.hooks.PerformFinished()
	}
}

func (g *Game) notifySubPhase(phase int, efficiencies map[CommandID]int) {
	if g.hooks.SubPhaseStarted != nil {
		g.hooks.SubPhaseStarted(phase, efficiencies)
	}
}

func (g *Game) notifyRoundEnded() {
	if g.hooks.RoundEnded != nil {
		g.hooks.RoundEnded(g.turn)
	}
}

func (g *Game) notifyGameEnded(winner *Player) {
	if g.hooks.GameEnded != nil {
		g.hooks.GameEnded(winner)
	}
}

// BotThinking signals that a scripted player started deliberating. Exposed
// for strategy implementations.
func (g *Game) BotThinking(p *Player, activity string) {
	if g.hooks.Thinking != nil {
		g.hooks.Thinking(p, activity)
	}
}

// BotDoneThinking signals that a scripted player is about to act.
func (g *Game) BotDoneThinking(p *Player) {
	if g.hooks.DoneThinking != nil {
		g.hooks.DoneThinking(p)
	}
}
