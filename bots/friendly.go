package bots

import (
	"golang.org/x/exp/rand"

	"imperium/game"
)

// friendlyBot plays conservatively: it spends only half its quotas,
// reinforces its weakest system, often skips exploring entirely, and
// rarely attacks, preferring the least defended target when it does.
type friendlyBot struct {
	thinker
	rng *rand.Rand
}

func (b *friendlyBot) Name() string { return Friendly }

func (b *friendlyBot) DeployChooseHex(state *game.DeployState, candidates []*game.Hex) {
	b.think("choosing a hex to deploy ships", func() {
		state.DeployShips(candidates[0])
	})
}

func (b *friendlyBot) PlanChooseCommands(state *game.PlanState) {
	b.think("planning commands", func() {
		state.PlanCommands([]game.CommandID{
			game.CommandExplore, game.CommandExpand, game.CommandExterminate,
		})
	})
}

func (b *friendlyBot) ExpandChooseHex(cmd *game.Expand, candidates []*game.Hex) {
	b.think("choosing a hex to expand", func() {
		half := (cmd.Total() + 1) / 2
		if cmd.Added() >= half {
			cmd.Finish()
			return
		}
		weakest := candidates[0]
		for _, h := range candidates[1:] {
			if h.ShipCount()+h.Level() < weakest.ShipCount()+weakest.Level() {
				weakest = h
			}
		}
		cmd.AddShips(weakest, half-cmd.Added())
	})
}

func (b *friendlyBot) ExploreChooseStart(cmd *game.Explore, candidates []*game.Hex) {
	b.think("choosing a hex to explore from", func() {
		// Half the time it stays home, and one movement per round is
		// plenty.
		if b.rng.Intn(2) == 0 || cmd.MovementsMade() >= 1 {
			cmd.Finish()
			return
		}
		quietest := candidates[0]
		for _, h := range candidates[1:] {
			if shipDensity(h) < shipDensity(quietest) {
				quietest = h
			}
		}
		cmd.Start(quietest)
	})
}

func (b *friendlyBot) ExploreChooseNext(cmd *game.Explore, candidates []*game.Hex) {
	b.think("choosing where to explore next", func() {
		if cmd.PathLength() >= 2 {
			cmd.Finish()
			return
		}
		emptiest := candidates[0]
		for _, h := range candidates[1:] {
			if h.ShipCount() < emptiest.ShipCount() {
				emptiest = h
			}
		}
		adjustment := 0
		if cmd.PathLength() == 1 {
			adjustment = (cmd.Head().UnmovedShipCount() + 1) / 2
		}
		cmd.MoveNext(emptiest, adjustment)
	})
}

func (b *friendlyBot) ExterminateChooseTarget(cmd *game.Exterminate, candidates []*game.Hex) {
	b.think("choosing a hex to invade", func() {
		// Attacks only one round in four.
		if b.rng.Intn(4) != 0 {
			cmd.Finish()
			return
		}
		chosen := candidates[0]
		for _, h := range candidates[1:] {
			if h.ShipCount() < chosen.ShipCount() ||
				(h.ShipCount() == chosen.ShipCount() && h.Level() < chosen.Level()) {
				chosen = h
			}
		}
		cmd.StartInvasion(chosen)
	})
}

func (b *friendlyBot) ExterminateChooseShips(cmd *game.Exterminate, invading []*game.Hex) {
	b.think("committing ships to the invasion", func() {
		half := (cmd.MaxShips() + 1) / 2
		if cmd.ShipsUsed() >= half {
			cmd.Finish()
			return
		}
		from := invading[0]
		n := min(half-cmd.ShipsUsed(), from.UninvadedShipCount())
		cmd.Commit(from, n)
	})
}

func (b *friendlyBot) ExploitChooseSector(state *game.ExploitState, candidates []*game.Sector) {
	b.think("choosing a sector to score", func() {
		humblest := candidates[0]
		for _, sec := range candidates[1:] {
			if sec.PotentialScore(b.player) < humblest.PotentialScore(b.player) {
				humblest = sec
			}
		}
		state.ChooseSector(humblest)
	})
}
