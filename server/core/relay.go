package core

import (
	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
	"github.com/veggie-arcade/airhockey-mp/shared/messages"
)

// The relay handlers forward physics traffic between the two members of a
// room. Positions stay in the sender's frame on the wire; the receiving
// client applies the mirror transform.

// PaddleMove relays the sender's paddle position to the other member.
func (g *Registry) PaddleMove(c Sender, msg messages.PaddleMove) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[msg.RoomID]
	if !ok || !room.member(c.Id()) {
		return
	}
	if other := room.other(c.Id()); other != nil {
		room.sendTo(other.Id(), messages.OpponentPaddle{X: msg.X, Y: msg.Y})
	}
}

// PuckMove accepts canonical puck state from the host and streams it to the
// non-host. Anyone else claiming authority is dropped.
func (g *Registry) PuckMove(c Sender, msg messages.PuckMove) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[msg.RoomID]
	if !ok || c.Id() != room.HostID {
		return
	}
	if room.Phase != hockey.PhasePlaying && room.Phase != hockey.PhaseGoalPause {
		return
	}

	room.Puck = hockey.PuckState{X: msg.X, Y: msg.Y, VX: msg.VX, VY: msg.VY, Locked: msg.Locked}
	if other := room.other(c.Id()); other != nil {
		room.sendTo(other.Id(), messages.PuckUpdate{
			X: msg.X, Y: msg.Y, VX: msg.VX, VY: msg.VY, Locked: msg.Locked,
		})
	}
}

// PuckHit forwards a non-host impulse request to the host. The velocity is
// left in the sender's frame; the host's simulation negates it. The impulse
// is trusted as-is beyond the speed clamp applied there.
func (g *Registry) PuckHit(c Sender, msg messages.PuckHit) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[msg.RoomID]
	if !ok || !room.member(c.Id()) || c.Id() == room.HostID {
		return
	}
	if room.Phase != hockey.PhasePlaying {
		return
	}
	room.sendTo(room.HostID, msg)
}
