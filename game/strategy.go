package game

// Strategy answers the engine's decision requests for one player. Each
// method receives the acting state or command together with the currently
// legal choices, and must eventually feed exactly one decision back through
// the corresponding mutator. A scripted strategy answers synchronously; an
// interactive one may answer later, but always from the engine's single
// logical thread. The engine stays passive until the answer arrives.
type Strategy interface {
	// Name identifies the strategy profile, used to restore a saved game.
	Name() string

	DeployChooseHex(state *DeployState, candidates []*Hex)
	PlanChooseCommands(state *PlanState)
	ExpandChooseHex(cmd *Expand, candidates []*Hex)
	ExploreChooseStart(cmd *Explore, candidates []*Hex)
	ExploreChooseNext(cmd *Explore, candidates []*Hex)
	ExterminateChooseTarget(cmd *Exterminate, candidates []*Hex)
	ExterminateChooseShips(cmd *Exterminate, invading []*Hex)
	ExploitChooseSector(state *ExploitState, candidates []*Sector)
}

// StrategyFactory rebuilds a strategy from its profile name when restoring
// a snapshot.
type StrategyFactory func(name string, p *Player, g *Game) (Strategy, error)
