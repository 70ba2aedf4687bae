package core

import (
	"log"

	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
	"github.com/veggie-arcade/airhockey-mp/shared/messages"
)

// PlayerReady marks the caller ready. Once both members are ready the room
// enters the countdown and a single delayed transition to Playing is armed.
func (g *Registry) PlayerReady(c Sender, msg messages.PlayerReady) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[msg.RoomID]
	if !ok || !room.member(c.Id()) || len(room.Players) < 2 {
		return
	}
	if room.Phase != hockey.PhaseReadyWait {
		return
	}

	room.Ready[c.Id()] = true
	if other := room.other(c.Id()); other != nil {
		room.sendTo(other.Id(), messages.OpponentReady{})
	}
	log.Printf("[registry] %s ready in room %s (%d/%d)",
		c.Id(), room.ID, len(room.Ready), len(room.Players))

	if len(room.Ready) == 2 {
		g.startCountdown(room)
	}
}

// RequestRematch reuses the ready set to gate a new match in the same room.
func (g *Registry) RequestRematch(c Sender, msg messages.RequestRematch) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[msg.RoomID]
	if !ok || !room.member(c.Id()) || room.Phase != hockey.PhaseGameOver {
		return
	}
	if msg.Name != "" {
		room.Names[c.Id()] = msg.Name
	}

	room.Ready[c.Id()] = true
	log.Printf("[registry] %s wants a rematch in room %s (%d/2)",
		c.Id(), room.ID, len(room.Ready))
	if len(room.Ready) < 2 {
		return
	}

	room.Scores = hockey.Scores{}
	room.broadcast(messages.RematchAccepted{})
	g.startCountdown(room)
}

// startCountdown arms the single Countdown -> Playing transition.
// Callers hold g.mu.
func (g *Registry) startCountdown(room *Room) {
	room.Phase = hockey.PhaseCountdown
	room.broadcast(messages.CountdownStart{})
	log.Printf("[registry] room %s counting down", room.ID)

	g.schedule(room, g.countdownDelay, func(r *Room) {
		r.Phase = hockey.PhasePlaying
		r.Scores = hockey.Scores{}
		r.Ready = make(map[string]bool)
		r.Puck = hockey.ServePuck()
		r.broadcast(messages.StartGame{RoomID: r.ID, HostID: r.HostID, Names: r.Names})
		log.Printf("[registry] room %s playing", r.ID)
	})
}

// GoalScored increments the tally for the scoring side. Host only, and only
// while the room is actually playing, so a stale or duplicate report after
// game over is dropped.
func (g *Registry) GoalScored(c Sender, msg messages.GoalScored) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[msg.RoomID]
	if !ok || c.Id() != room.HostID || room.Phase != hockey.PhasePlaying {
		return
	}

	switch msg.Scorer {
	case hockey.SideTop:
		room.Scores.Top++
	case hockey.SideBottom:
		room.Scores.Bottom++
	default:
		return
	}

	room.broadcast(messages.ScoreUpdate{Scores: room.Scores, Scorer: msg.Scorer})
	log.Printf("[registry] room %s goal for %s (%d-%d)",
		room.ID, msg.Scorer, room.Scores.Top, room.Scores.Bottom)

	if winner, done := room.winnerByScore(); done {
		room.Phase = hockey.PhaseGameOver
		room.Ready = make(map[string]bool)
		room.broadcast(messages.GameOver{Winner: winner})
		log.Printf("[registry] room %s game over, %s wins", room.ID, winner)
		return
	}

	room.Phase = hockey.PhaseGoalPause
	room.Puck = hockey.ServePuck()
	g.schedule(room, g.goalPauseDelay, func(r *Room) {
		r.Phase = hockey.PhasePlaying
		r.Ready = make(map[string]bool)
		r.Puck = hockey.ServePuck()
		r.broadcast(messages.ResetPuck{})
	})
}
