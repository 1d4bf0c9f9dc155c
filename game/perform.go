package game

import (
	"fmt"
	"sort"
)

const (
	numPerformPhases = 3
	numCommands      = 3
)

// PerformState runs the three perform sub-phases. At the start it computes
// the efficiency matrix: for each sub-phase and command, how many players
// planned that command there. Players sharing a slot dilute each other,
// since a command's quota is 4 minus its efficiency. Within a sub-phase
// players act in ascending command order, one command running to
// completion before the next begins.
type PerformState struct {
	game *Game

	// efficiencies[phase][command] counts the players who planned command
	// at that sub-phase. Index 0 of the inner array is unused, commands
	// being numbered from 1.
	efficiencies [numPerformPhases][numCommands + 1]int
	// order[phase] holds the players sorted by their command for that
	// sub-phase, stable on seat order.
	order [numPerformPhases][]*Player

	phase    int
	cmdIndex int
	current  Command
}

func NewPerformState(g *Game) *PerformState {
	return &PerformState{game: g}
}

func (s *PerformState) Phase() Phase { return PhasePerform }

func (s *PerformState) Run() {
	if s.cmdIndex == len(s.game.players) {
		s.phase++
		s.cmdIndex = 0
	}
	if s.phase == numPerformPhases {
		s.game.notifyPerformFinished()
		s.game.transitionTo(NewExploitState(s.game))
		s.game.runState()
		return
	}

	if s.order[0] == nil {
		s.computeEfficiencies()
	}

	if s.current == nil {
		if s.cmdIndex == 0 {
			s.game.notifySubPhase(s.phase, s.phaseEfficiencies())
		}
		s.startCommand()
	}
	s.current.Run()
}

func (s *PerformState) computeEfficiencies() {
	for phase := 0; phase < numPerformPhases; phase++ {
		for _, p := range s.game.players {
			s.efficiencies[phase][p.CommandForPhase(phase)]++
		}
		s.order[phase] = s.sortPlayersByCommand(phase)
	}
}

func (s *PerformState) sortPlayersByCommand(phase int) []*Player {
	sorted := s.game.Players()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CommandForPhase(phase) < sorted[j].CommandForPhase(phase)
	})
	return sorted
}

// startCommand instantiates the next player's planned command for this
// sub-phase. An out-of-range command id means the plan is corrupted, which
// is unrecoverable.
func (s *PerformState) startCommand() {
	p := s.order[s.phase][s.cmdIndex]
	s.game.setCurrentPlayer(p)
	id := p.CommandForPhase(s.phase)
	efficiency := s.efficiencies[s.phase][id]

	s.game.log.Debug().
		Str("player", p.name).
		Stringer("command", id).
		Int("efficiency", efficiency).
		Int("subPhase", s.phase).
		Msg("command starting")

	switch id {
	case CommandExpand:
		s.current = newExpand(s.game, p, efficiency, s.NextCommand)
	case CommandExplore:
		s.current = newExplore(s.game, p, efficiency, s.NextCommand)
	case CommandExterminate:
		s.current = newExterminate(s.game, p, efficiency, s.NextCommand)
	default:
		panic(fmt.Sprintf("unknown command id %d planned by %s", id, p.name))
	}
}

// NextCommand finishes the current command and moves on to the next
// player, or the next sub-phase.
func (s *PerformState) NextCommand() {
	s.cmdIndex++
	s.current = nil
	s.Run()
}

// CurrentCommand returns the in-flight command, or nil between commands.
func (s *PerformState) CurrentCommand() Command { return s.current }

// CurrentSubPhase returns the running sub-phase, 0 to 2.
func (s *PerformState) CurrentSubPhase() int { return s.phase }

// Efficiency returns the planned-player count for a command at a
// sub-phase.
func (s *PerformState) Efficiency(phase int, id CommandID) int {
	return s.efficiencies[phase][id]
}

func (s *PerformState) phaseEfficiencies() map[CommandID]int {
	return map[CommandID]int{
		CommandExpand:      s.efficiencies[s.phase][CommandExpand],
		CommandExplore:     s.efficiencies[s.phase][CommandExplore],
		CommandExterminate: s.efficiencies[s.phase][CommandExterminate],
	}
}
