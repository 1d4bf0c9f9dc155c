package game

import "fmt"

// CommandID identifies one of the three perform-phase commands. The
// numeric order is also the acting order within a sub-phase: all Expand
// choosers act before Explore choosers, who act before Exterminate
// choosers.
type CommandID int

const (
	CommandExpand CommandID = iota + 1
	CommandExplore
	CommandExterminate
)

func (c CommandID) String() string {
	switch c {
	case CommandExpand:
		return "expand"
	case CommandExplore:
		return "explore"
	case CommandExterminate:
		return "exterminate"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// Command is one player's in-flight perform action. Run computes the legal
// choices and asks the strategy; the strategy answers through the concrete
// command's mutators, which re-enter Run. Finish ends the command early as
// a first-class decision.
type Command interface {
	Run()
	Finish()
	Player() *Player
	ID() CommandID
}
