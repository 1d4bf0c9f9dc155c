package game

// Phase names the game's phases in sequence order.
type Phase int

const (
	PhaseDeploy Phase = iota
	PhasePlan
	PhasePerform
	PhaseExploit
	PhaseEndRound
	PhaseEndGame
)

func (p Phase) String() string {
	switch p {
	case PhaseDeploy:
		return "deploy"
	case PhasePlan:
		return "plan"
	case PhasePerform:
		return "perform"
	case PhaseExploit:
		return "exploit"
	case PhaseEndRound:
		return "end-round"
	case PhaseEndGame:
		return "end-game"
	default:
		return "unknown"
	}
}

// State is one phase of the game state machine:
//
//	Deploy -> Plan -> Perform -> Exploit -> EndRound -> { EndGame | Plan }
//
// Run owns the phase's control flow: it computes the legal choices, asks
// the current player's strategy, and returns. The strategy answers through
// the state's mutator, which applies the decision and re-enters Run.
// Illegal decisions are silent no-ops; the caller is expected to re-prompt.
type State interface {
	Run()
	Phase() Phase
}
