package messages

import "github.com/veggie-arcade/airhockey-mp/shared/hockey"

// PlayerReady marks the caller ready for the current countdown. The room
// starts the countdown once both members are ready.
type PlayerReady struct {
	RoomID string
}

// OpponentReady is relayed to the other member only.
type OpponentReady struct{}

// CountdownStart tells both clients to begin the fixed 3-step countdown.
type CountdownStart struct{}

// StartGame means the simulation may begin; scores are reset server-side.
type StartGame struct {
	RoomID string
	HostID string
	Names  map[string]string
}

// GoalScored is sent by the host when the puck crosses a goal mouth.
// Scorer is the side that earned the point.
type GoalScored struct {
	RoomID string
	Scorer hockey.Side
}

// ScoreUpdate is the new tally after a goal.
type ScoreUpdate struct {
	Scores hockey.Scores
	Scorer hockey.Side
}

// ResetPuck tells both clients to clear the local puck visualization and
// re-lock it for the next serve.
type ResetPuck struct{}

// GameOver ends the match; Winner is the side that reached the win score.
type GameOver struct {
	Winner hockey.Side
}

// RequestRematch marks the caller ready for a new match in the same room.
type RequestRematch struct {
	RoomID string
	Name   string
}

// RematchAccepted means both players requested a rematch.
type RematchAccepted struct{}

// LeaveGame is a voluntary departure; the opponent wins by forfeit.
type LeaveGame struct {
	RoomID string
}

// PlayerLeft tells the remaining member the opponent forfeited.
type PlayerLeft struct{}
