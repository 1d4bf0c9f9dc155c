package game

import "testing"

// scripted is a test strategy built from optional handler funcs. A nil
// handler leaves the engine suspended at that decision point, which is how
// tests freeze the game mid-phase to inspect or snapshot it.
type scripted struct {
	profile      string
	deploy       func(*DeployState, []*Hex)
	plan         func(*PlanState)
	expand       func(*Expand, []*Hex)
	exploreStart func(*Explore, []*Hex)
	exploreNext  func(*Explore, []*Hex)
	extTarget    func(*Exterminate, []*Hex)
	extShips     func(*Exterminate, []*Hex)
	exploit      func(*ExploitState, []*Sector)
}

func (s *scripted) Name() string {
	if s.profile == "" {
		return "scripted"
	}
	return s.profile
}

func (s *scripted) DeployChooseHex(state *DeployState, candidates []*Hex) {
	if s.deploy != nil {
		s.deploy(state, candidates)
	}
}

func (s *scripted) PlanChooseCommands(state *PlanState) {
	if s.plan != nil {
		s.plan(state)
	}
}

func (s *scripted) ExpandChooseHex(cmd *Expand, candidates []*Hex) {
	if s.expand != nil {
		s.expand(cmd, candidates)
	}
}

func (s *scripted) ExploreChooseStart(cmd *Explore, candidates []*Hex) {
	if s.exploreStart != nil {
		s.exploreStart(cmd, candidates)
	}
}

func (s *scripted) ExploreChooseNext(cmd *Explore, candidates []*Hex) {
	if s.exploreNext != nil {
		s.exploreNext(cmd, candidates)
	}
}

func (s *scripted) ExterminateChooseTarget(cmd *Exterminate, candidates []*Hex) {
	if s.extTarget != nil {
		s.extTarget(cmd, candidates)
	}
}

func (s *scripted) ExterminateChooseShips(cmd *Exterminate, invading []*Hex) {
	if s.extShips != nil {
		s.extShips(cmd, invading)
	}
}

func (s *scripted) ExploitChooseSector(state *ExploitState, candidates []*Sector) {
	if s.exploit != nil {
		s.exploit(state, candidates)
	}
}

// newTestGame builds a seeded three-player session with the given
// strategies attached in seat order.
func newTestGame(t *testing.T, seed uint64, strategies ...*scripted) *Game {
	t.Helper()
	if len(strategies) != NumPlayers {
		t.Fatalf("need %d strategies, got %d", NumPlayers, len(strategies))
	}
	g := New(WithSeed(seed))
	names := []string{"alice", "bob", "carol"}
	for i, s := range strategies {
		p, err := g.AddPlayer(names[i])
		if err != nil {
			t.Fatalf("add player: %v", err)
		}
		p.SetStrategy(s)
	}
	return g
}

// firstCandidate deploys on the first legal hex, the simplest way to get
// past the deploy phase.
func firstCandidate(state *DeployState, candidates []*Hex) {
	state.DeployShips(candidates[0])
}

// planOrder returns a plan handler choosing a fixed command order.
func planOrder(commands ...CommandID) func(*PlanState) {
	return func(state *PlanState) {
		state.PlanCommands(commands)
	}
}

// finishAll are perform handlers that decline every command immediately.
func finishAll(s *scripted) *scripted {
	s.expand = func(cmd *Expand, _ []*Hex) { cmd.Finish() }
	s.exploreStart = func(cmd *Explore, _ []*Hex) { cmd.Finish() }
	s.exploreNext = func(cmd *Explore, _ []*Hex) { cmd.Finish() }
	s.extTarget = func(cmd *Exterminate, _ []*Hex) { cmd.Finish() }
	s.extShips = func(cmd *Exterminate, _ []*Hex) { cmd.Finish() }
	return s
}

// deployedShipCount counts the player's ships currently on the board.
func deployedShipCount(g *Game, p *Player) int {
	total := 0
	for _, h := range g.Board().Hexes() {
		for _, s := range h.Ships() {
			if s.Owner() == p {
				total++
			}
		}
	}
	return total
}
