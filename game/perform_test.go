package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformOrderAndEfficiencies(t *testing.T) {
	var acted []string
	var subPhases []map[CommandID]int

	var g *Game
	hooks := Hooks{
		SubPhaseStarted: func(phase int, eff map[CommandID]int) {
			require.Equal(t, len(subPhases), phase)
			subPhases = append(subPhases, eff)
		},
		// Command dispatch selects the current player even when the command
		// itself has nothing to ask, so this sees every actor.
		CurrentPlayerChanged: func(p *Player) {
			if state, ok := g.State().(*PerformState); ok {
				acted = append(acted, fmt.Sprintf("%s:%s",
					p.Name(), p.CommandForPhase(state.CurrentSubPhase())))
			}
		},
	}

	g = New(WithSeed(11), WithHooks(hooks))
	plans := [][]CommandID{
		{CommandExpand, CommandExplore, CommandExterminate},
		{CommandExplore, CommandExterminate, CommandExpand},
		{CommandExterminate, CommandExpand, CommandExplore},
	}
	for i, name := range []string{"alice", "bob", "carol"} {
		p, err := g.AddPlayer(name)
		require.NoError(t, err)
		order := plans[i]
		p.SetStrategy(finishAll(&scripted{
			deploy: firstCandidate,
			plan:   func(s *PlanState) { s.PlanCommands(order) },
		}))
	}
	require.NoError(t, g.Run())

	// Every plan is a cyclic shift, so each command has efficiency 1 in
	// every sub-phase and within a sub-phase players act in ascending
	// command order.
	require.Len(t, subPhases, 3)
	for _, eff := range subPhases {
		assert.Equal(t, map[CommandID]int{
			CommandExpand:      1,
			CommandExplore:     1,
			CommandExterminate: 1,
		}, eff)
	}

	want := []string{
		"alice:expand", "bob:explore", "carol:exterminate",
		"carol:expand", "alice:explore", "bob:exterminate",
		"bob:expand", "carol:explore", "alice:exterminate",
	}
	assert.Equal(t, want, acted)
}

func TestPerformEfficiencyDilution(t *testing.T) {
	var subPhases []map[CommandID]int
	hooks := Hooks{
		SubPhaseStarted: func(_ int, eff map[CommandID]int) {
			subPhases = append(subPhases, eff)
		},
	}

	g := New(WithSeed(11), WithHooks(hooks))
	samePlan := []CommandID{CommandExpand, CommandExplore, CommandExterminate}
	var quotas []int
	for _, name := range []string{"alice", "bob", "carol"} {
		p, err := g.AddPlayer(name)
		require.NoError(t, err)
		s := finishAll(&scripted{
			deploy: firstCandidate,
			plan:   func(st *PlanState) { st.PlanCommands(samePlan) },
		})
		s.expand = func(cmd *Expand, _ []*Hex) {
			quotas = append(quotas, cmd.Total())
			cmd.Finish()
		}
		p.SetStrategy(s)
	}
	require.NoError(t, g.Run())

	// All three players stacked the same order, so efficiency is 3 for the
	// shared slot and the expand quota shrinks to 4-3=1.
	require.Len(t, subPhases, 3)
	assert.Equal(t, 3, subPhases[0][CommandExpand])
	assert.Equal(t, 0, subPhases[0][CommandExplore])
	assert.Equal(t, 3, subPhases[1][CommandExplore])
	assert.Equal(t, 3, subPhases[2][CommandExterminate])

	require.Len(t, quotas, 3)
	for _, q := range quotas {
		assert.Equal(t, 1, q)
	}
}
