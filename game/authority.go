package game

import (
	"github.com/veggie-arcade/airhockey-mp/shared/gamemath"
	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
	"github.com/veggie-arcade/airhockey-mp/shared/messages"
)

// Authority is the host-side canonical simulation. It is the only writer of
// the shared puck state: it integrates motion, resolves collisions for both
// paddles, detects goals, and streams the result to the room once per frame.
type Authority struct {
	roomID string
	send   func(any) error

	puck        hockey.PuckState
	goalPending bool
}

func NewAuthority(roomID string, send func(any) error) *Authority {
	return &Authority{
		roomID: roomID,
		send:   send,
		puck:   hockey.ServePuck(),
	}
}

// Puck returns the canonical state, in the host's frame.
func (a *Authority) Puck() hockey.PuckState {
	return a.puck
}

// Reset parks the puck for the next serve. Called when the server signals
// the end of a goal pause or a match start.
func (a *Authority) Reset() {
	a.puck = hockey.ServePuck()
	a.goalPending = false
}

// ApplyRemoteImpulse applies an impulse the non-host computed from its own
// predicted paddle contact. The request arrives in the sender's frame, so
// both components are negated, then clamped like any other hit.
func (a *Authority) ApplyRemoteImpulse(vx, vy float64) {
	if a.goalPending {
		return
	}
	vx, vy = gamemath.MirrorVelocity(vx, vy)
	a.puck.VX, a.puck.VY = gamemath.ClampSpeed(vx, vy, hockey.MaxPuckSpeed)
	a.puck.Locked = false
}

// Step advances the simulation one frame. local is the host's own paddle;
// remote is the opponent's paddle already mirrored into the host's frame.
// The resulting snapshot is broadcast whether or not anything moved, so the
// mirror never starves.
func (a *Authority) Step(local, remote Paddle) {
	if !a.goalPending {
		a.integrate()
		a.collide(local)
		a.collide(remote)
	}
	a.publish()
}

func (a *Authority) integrate() {
	if a.puck.Locked {
		return
	}

	a.puck.VX, a.puck.VY = gamemath.ApplyFriction(a.puck.VX, a.puck.VY, hockey.Friction, hockey.StopSpeed)
	a.puck.X += a.puck.VX
	a.puck.Y += a.puck.VY

	const r = hockey.PuckRadius
	a.puck.X = gamemath.Clamp(a.puck.X, r, hockey.FieldWidth-r)
	a.puck.Y = gamemath.Clamp(a.puck.Y, r, hockey.FieldHeight-r)

	// Side walls always reflect.
	if a.puck.X == r || a.puck.X == hockey.FieldWidth-r {
		a.puck.VX = -a.puck.VX
	}

	// End walls reflect outside the goal mouth; inside it, a goal for the
	// attacking side. The host defends the bottom end.
	if a.puck.Y == r {
		if gamemath.InGoalSpan(a.puck.X, hockey.GoalSpanMin, hockey.GoalSpanMax) {
			a.goal(hockey.SideBottom)
			return
		}
		a.puck.VY = -a.puck.VY
	}
	if a.puck.Y == hockey.FieldHeight-r {
		if gamemath.InGoalSpan(a.puck.X, hockey.GoalSpanMin, hockey.GoalSpanMax) {
			a.goal(hockey.SideTop)
			return
		}
		a.puck.VY = -a.puck.VY
	}
}

// goal suspends integration until the server finishes the goal pause and
// ResetPuck arrives.
func (a *Authority) goal(scorer hockey.Side) {
	a.goalPending = true
	a.puck.VX, a.puck.VY = 0, 0
	a.puck.Locked = true
	_ = a.send(messages.GoalScored{RoomID: a.roomID, Scorer: scorer})
}

func (a *Authority) collide(paddle Paddle) {
	nx, ny, overlap, hit := gamemath.CircleContact(
		a.puck.X, a.puck.Y, paddle.X, paddle.Y, hockey.PuckRadius+hockey.PaddleRadius)
	if !hit {
		return
	}

	a.puck.X += nx * overlap
	a.puck.Y += ny * overlap
	a.puck.VX, a.puck.VY = gamemath.HitResponse(
		a.puck.VX, a.puck.VY, nx, ny, paddle.VX, paddle.VY,
		hockey.HitStrength, hockey.MaxPuckSpeed)
	a.puck.Locked = false
}

func (a *Authority) publish() {
	_ = a.send(messages.PuckMove{
		RoomID: a.roomID,
		X:      a.puck.X, Y: a.puck.Y,
		VX: a.puck.VX, VY: a.puck.VY,
		Locked: a.puck.Locked,
	})
}
