package game

import (
	"github.com/veggie-arcade/airhockey-mp/shared/gamemath"
	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
	"github.com/veggie-arcade/airhockey-mp/shared/messages"
)

// Mirror is the non-host side. It never mutates canonical state: every
// authoritative broadcast is mirrored into the local frame for display, and
// a predicted contact against the local paddle is shown immediately while
// the computed impulse is forwarded to the host in the local frame.
type Mirror struct {
	roomID string
	send   func(any) error

	puck hockey.PuckState // local (mirrored) frame
}

func NewMirror(roomID string, send func(any) error) *Mirror {
	return &Mirror{
		roomID: roomID,
		send:   send,
		puck:   hockey.ServePuck(),
	}
}

// Puck returns the displayed state, in the local frame.
func (m *Mirror) Puck() hockey.PuckState {
	return m.puck
}

// Reset re-locks the local puck at center field.
func (m *Mirror) Reset() {
	m.puck = hockey.ServePuck()
}

// ApplyUpdate installs a canonical snapshot, transformed into the local
// frame. This is the exact inverse of the transform the host applies to an
// incoming impulse, so round-tripping a state is the identity.
func (m *Mirror) ApplyUpdate(u messages.PuckUpdate) {
	x, y := gamemath.MirrorPosition(u.X, u.Y, hockey.FieldWidth, hockey.FieldHeight)
	vx, vy := gamemath.MirrorVelocity(u.VX, u.VY)
	m.puck = hockey.PuckState{X: x, Y: y, VX: vx, VY: vy, Locked: u.Locked}
}

// Step runs the local collision prediction for one frame. On contact the
// response velocity is computed with the same math the host uses, applied
// to the local copy for responsiveness, and sent to the host as an impulse
// request in the local frame.
func (m *Mirror) Step(local Paddle) {
	nx, ny, overlap, hit := gamemath.CircleContact(
		m.puck.X, m.puck.Y, local.X, local.Y, hockey.PuckRadius+hockey.PaddleRadius)
	if !hit {
		return
	}

	m.puck.X += nx * overlap
	m.puck.Y += ny * overlap
	m.puck.VX, m.puck.VY = gamemath.HitResponse(
		m.puck.VX, m.puck.VY, nx, ny, local.VX, local.VY,
		hockey.HitStrength, hockey.MaxPuckSpeed)
	m.puck.Locked = false

	_ = m.send(messages.PuckHit{RoomID: m.roomID, VX: m.puck.VX, VY: m.puck.VY})
}

// MirrorPaddle transforms an opponent paddle position from the sender's
// frame into the local frame. Both peers use it, which keeps the transform
// in one place for puck and paddle traffic alike.
func MirrorPaddle(x, y float64) (float64, float64) {
	return gamemath.MirrorPosition(x, y, hockey.FieldWidth, hockey.FieldHeight)
}
