package bots

import "imperium/game"

// RequestKind names a decision point exposed to an interactive player.
type RequestKind int

const (
	RequestDeploy RequestKind = iota
	RequestPlan
	RequestExpand
	RequestExploreStart
	RequestExploreNext
	RequestExterminateTarget
	RequestExterminateShips
	RequestExploit
)

// Request is one pending decision: the kind, the legal choices, and the
// state or command whose mutators the answer must go to. Exactly one of
// the engine fields is set, matching Kind.
type Request struct {
	Kind   RequestKind
	Player *game.Player

	Hexes   []*game.Hex
	Sectors []*game.Sector

	Deploy      *game.DeployState
	Plan        *game.PlanState
	Expand      *game.Expand
	Explore     *game.Explore
	Exterminate *game.Exterminate
	Exploit     *game.ExploitState
}

// Interactive records each decision request and leaves the engine passive
// until an outside caller answers through the request's state or command.
// Set OnRequest to be pushed requests as they arrive, or poll Pending.
// Answers must come from the engine's own logical thread; the engine has
// no internal locking.
type Interactive struct {
	game   *game.Game
	player *game.Player

	// OnRequest, when set, is invoked for every decision request.
	OnRequest func(Request)

	pending *Request
}

// NewInteractive builds the interactive shim for a player.
func NewInteractive(g *game.Game, p *game.Player) *Interactive {
	return &Interactive{game: g, player: p}
}

func (b *Interactive) Name() string { return Human }

// Pending returns the decision the engine is waiting on, nil if none.
func (b *Interactive) Pending() *Request { return b.pending }

func (b *Interactive) post(req Request) {
	req.Player = b.player
	b.pending = &req
	if b.OnRequest != nil {
		b.OnRequest(req)
	}
}

func (b *Interactive) DeployChooseHex(state *game.DeployState, candidates []*game.Hex) {
	b.post(Request{Kind: RequestDeploy, Hexes: candidates, Deploy: state})
}

func (b *Interactive) PlanChooseCommands(state *game.PlanState) {
	b.post(Request{Kind: RequestPlan, Plan: state})
}

func (b *Interactive) ExpandChooseHex(cmd *game.Expand, candidates []*game.Hex) {
	b.post(Request{Kind: RequestExpand, Hexes: candidates, Expand: cmd})
}

func (b *Interactive) ExploreChooseStart(cmd *game.Explore, candidates []*game.Hex) {
	b.post(Request{Kind: RequestExploreStart, Hexes: candidates, Explore: cmd})
}

func (b *Interactive) ExploreChooseNext(cmd *game.Explore, candidates []*game.Hex) {
	b.post(Request{Kind: RequestExploreNext, Hexes: candidates, Explore: cmd})
}

func (b *Interactive) ExterminateChooseTarget(cmd *game.Exterminate, candidates []*game.Hex) {
	b.post(Request{Kind: RequestExterminateTarget, Hexes: candidates, Exterminate: cmd})
}

func (b *Interactive) ExterminateChooseShips(cmd *game.Exterminate, invading []*game.Hex) {
	b.post(Request{Kind: RequestExterminateShips, Hexes: invading, Exterminate: cmd})
}

func (b *Interactive) ExploitChooseSector(state *game.ExploitState, candidates []*game.Sector) {
	b.post(Request{Kind: RequestExploit, Sectors: candidates, Exploit: state})
}
