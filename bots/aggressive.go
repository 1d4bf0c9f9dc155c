package bots

import (
	"golang.org/x/exp/rand"

	"imperium/game"
)

// aggressiveBot plays exterminate first and commits everything it can:
// it reinforces its strongest system, moves full fleets toward crowded
// hexes, and invades either the weakest or the strongest reachable target
// on a coin flip.
type aggressiveBot struct {
	thinker
	rng *rand.Rand
}

func (b *aggressiveBot) Name() string { return Aggressive }

func (b *aggressiveBot) DeployChooseHex(state *game.DeployState, candidates []*game.Hex) {
	b.think("choosing a hex to deploy ships", func() {
		state.DeployShips(candidates[0])
	})
}

func (b *aggressiveBot) PlanChooseCommands(state *game.PlanState) {
	b.think("planning commands", func() {
		state.PlanCommands([]game.CommandID{
			game.CommandExterminate, game.CommandExplore, game.CommandExpand,
		})
	})
}

func (b *aggressiveBot) ExpandChooseHex(cmd *game.Expand, candidates []*game.Hex) {
	b.think("choosing a hex to expand", func() {
		best := candidates[0]
		for _, h := range candidates[1:] {
			if h.ShipCount()+h.Level() > best.ShipCount()+best.Level() {
				best = h
			}
		}
		cmd.AddShips(best, cmd.Remaining())
	})
}

func (b *aggressiveBot) ExploreChooseStart(cmd *game.Explore, candidates []*game.Hex) {
	b.think("choosing a hex to explore from", func() {
		best := candidates[0]
		for _, h := range candidates[1:] {
			if shipDensity(h) > shipDensity(best) {
				best = h
			}
		}
		cmd.Start(best)
	})
}

func (b *aggressiveBot) ExploreChooseNext(cmd *game.Explore, candidates []*game.Hex) {
	b.think("choosing where to explore next", func() {
		best := candidates[0]
		for _, h := range candidates[1:] {
			if h.ShipCount() > best.ShipCount() {
				best = h
			}
		}
		// Take every unmoved ship along.
		cmd.MoveNext(best, cmd.Head().UnmovedShipCount())
	})
}

func (b *aggressiveBot) ExterminateChooseTarget(cmd *game.Exterminate, candidates []*game.Hex) {
	b.think("choosing a hex to invade", func() {
		pickWeakest := b.rng.Intn(2) == 0
		chosen := candidates[0]
		for _, h := range candidates[1:] {
			if pickWeakest && h.ShipCount() < chosen.ShipCount() {
				chosen = h
			} else if !pickWeakest && h.ShipCount() > chosen.ShipCount() {
				chosen = h
			}
		}
		cmd.StartInvasion(chosen)
	})
}

func (b *aggressiveBot) ExterminateChooseShips(cmd *game.Exterminate, invading []*game.Hex) {
	b.think("committing ships to the invasion", func() {
		from := invading[0]
		cmd.Commit(from, from.UninvadedShipCount())
	})
}

func (b *aggressiveBot) ExploitChooseSector(state *game.ExploitState, candidates []*game.Sector) {
	b.think("choosing a sector to score", func() {
		best := candidates[0]
		for _, sec := range candidates[1:] {
			if sec.PotentialScore(b.player) > best.PotentialScore(b.player) {
				best = sec
			}
		}
		state.ChooseSector(best)
	})
}

// shipDensity ranks explore starts by ships per neighbor.
func shipDensity(h *game.Hex) float64 {
	n := len(h.Neighbors())
	if n == 0 {
		n = 1
	}
	return float64(h.ShipCount()) / float64(n)
}
