// Package hockey defines the playing-field geometry, gameplay tuning, and
// match-state types shared between client and server. It must have zero
// dependencies on ebiten or any graphics library so the dedicated server
// binary stays headless.
package hockey

import "time"

// Field dimensions in world units. Both players render the same field from
// opposite ends; the host's frame is canonical.
const (
	FieldWidth  = 480.0
	FieldHeight = 720.0

	PuckRadius   = 14.0
	PaddleRadius = 28.0

	// GoalWidth is the span of the goal mouth, centered on the x axis.
	GoalWidth = 160.0
)

// Physics tuning for the host simulation and the non-host prediction path.
// Both sides must use identical values or predicted hits will visibly snap.
const (
	Friction     = 0.985 // multiplicative per tick
	StopSpeed    = 0.05  // below this the puck is parked
	MaxPuckSpeed = 16.0
	HitStrength  = 0.6 // paddle velocity contribution on contact
)

// GoalSpanMin and GoalSpanMax bound the goal mouth on the x axis.
const (
	GoalSpanMin = (FieldWidth - GoalWidth) / 2
	GoalSpanMax = (FieldWidth + GoalWidth) / 2
)

// Match progression.
const (
	WinScore       = 7
	CountdownDelay = 3 * time.Second
	GoalPauseDelay = 2 * time.Second
)

// Phase is the lifecycle state of a room.
type Phase int

const (
	PhaseWaiting Phase = iota // one member, waiting for an opponent
	PhaseReadyWait            // two members, waiting for ready-up
	PhaseCountdown            // both ready, countdown running
	PhasePlaying
	PhaseGoalPause // goal scored, brief pause before the next serve
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseReadyWait:
		return "readywait"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseGoalPause:
		return "goalpause"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// Side identifies a player's end of the field in the host's frame.
// The host defends the bottom goal.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideTop {
		return SideBottom
	}
	return SideTop
}

// Scores holds the running tally for one match.
type Scores struct {
	Top    int
	Bottom int
}

// PuckState is the canonical physics snapshot, always expressed in the
// host's coordinate frame. Locked means the puck is parked for a serve and
// ignores integration until first paddle contact.
type PuckState struct {
	X, Y   float64
	VX, VY float64
	Locked bool
}

// ServePuck returns the puck parked at center field for a serve.
func ServePuck() PuckState {
	return PuckState{X: FieldWidth / 2, Y: FieldHeight / 2, Locked: true}
}
