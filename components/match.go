package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
)

// MatchView is what the match scene currently shows on top of the
// simulation: phase, tally, the countdown overlay, and the end card.
type MatchView int

const (
	ViewCountdown MatchView = iota
	ViewPlaying
	ViewGoalPause
	ViewGameOver
)

// MatchData carries the room bindings and presentation state for one match.
// RoomID, HostID and IsHost are valid only for the lifetime of the match.
type MatchData struct {
	RoomID string
	HostID string
	IsHost bool
	Names  map[string]string

	View   MatchView
	Scores hockey.Scores

	// Countdown overlay: step counts 3..1, Tween fades each digit in and
	// leaves the current alpha in Alpha for the renderer.
	CountdownStep int
	StepElapsed   float32
	Tween         *gween.Tween
	Alpha         float32

	// Goal flash.
	LastScorer hockey.Side

	Winner       hockey.Side
	RematchAsked bool
}

var Match = donburi.NewComponentType[MatchData]()

// MySide returns the side this player defends in the host's frame.
func (m *MatchData) MySide() hockey.Side {
	if m.IsHost {
		return hockey.SideBottom
	}
	return hockey.SideTop
}

// MyScore and TheirScore read the tally from this player's perspective.
func (m *MatchData) MyScore() int {
	if m.IsHost {
		return m.Scores.Bottom
	}
	return m.Scores.Top
}

func (m *MatchData) TheirScore() int {
	if m.IsHost {
		return m.Scores.Top
	}
	return m.Scores.Bottom
}

// OpponentName looks up the other player's display name.
func (m *MatchData) OpponentName(myID string) string {
	for id, name := range m.Names {
		if id != myID {
			return name
		}
	}
	return "opponent"
}
