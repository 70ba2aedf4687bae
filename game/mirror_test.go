package game

import (
	"math"
	"testing"

	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
	"github.com/veggie-arcade/airhockey-mp/shared/messages"
)

func TestMirror_AppliesUpdateInLocalFrame(t *testing.T) {
	m := NewMirror("ROOM01", (&sendSpy{}).send)
	m.ApplyUpdate(messages.PuckUpdate{X: 100, Y: 200, VX: 3, VY: -4, Locked: false})

	puck := m.Puck()
	if puck.X != hockey.FieldWidth-100 || puck.Y != hockey.FieldHeight-200 {
		t.Fatalf("position not mirrored: (%f, %f)", puck.X, puck.Y)
	}
	if puck.VX != -3 || puck.VY != 4 {
		t.Fatalf("velocity not mirrored: (%f, %f)", puck.VX, puck.VY)
	}
	if puck.Locked {
		t.Fatal("lock flag altered by the transform")
	}
}

func TestMirror_UpdateRoundTripsThroughImpulseTransform(t *testing.T) {
	// The host negates an incoming impulse; the mirror negates outgoing
	// velocities. Applying both must give back the original vector.
	m := NewMirror("ROOM01", (&sendSpy{}).send)
	m.ApplyUpdate(messages.PuckUpdate{X: 240, Y: 360, VX: 5, VY: -7})

	a := NewAuthority("ROOM01", (&sendSpy{}).send)
	puck := m.Puck()
	a.ApplyRemoteImpulse(puck.VX, puck.VY)

	host := a.Puck()
	if host.VX != 5 || host.VY != -7 {
		t.Fatalf("round trip changed the vector: (%f, %f)", host.VX, host.VY)
	}
}

func TestMirror_ContactSendsImpulse(t *testing.T) {
	spy := &sendSpy{}
	m := NewMirror("ROOM01", spy.send)
	m.ApplyUpdate(messages.PuckUpdate{
		X: hockey.FieldWidth / 2, Y: hockey.FieldHeight / 2, VX: 0, VY: 0,
	})

	paddle := Paddle{
		X: hockey.FieldWidth / 2, Y: hockey.FieldHeight/2 + 20,
		VX: 0, VY: -12,
	}
	m.Step(paddle)

	hits := sentOfType[messages.PuckHit](spy)
	if len(hits) != 1 {
		t.Fatalf("expected one impulse, got %d", len(hits))
	}
	puck := m.Puck()
	if hits[0].VX != puck.VX || hits[0].VY != puck.VY {
		t.Fatalf("impulse %+v does not match the predicted velocity (%f, %f)",
			hits[0], puck.VX, puck.VY)
	}
	if puck.VY >= 0 {
		t.Fatalf("predicted puck should move away from the paddle, vy=%f", puck.VY)
	}
	if puck.Locked {
		t.Fatal("contact must unlock the predicted puck")
	}
}

func TestMirror_NoContactNoTraffic(t *testing.T) {
	spy := &sendSpy{}
	m := NewMirror("ROOM01", spy.send)
	m.Step(Paddle{X: 50, Y: 50})

	if len(spy.sent) != 0 {
		t.Fatalf("impulse sent without contact: %v", spy.sent)
	}
}

func TestMirror_PredictionMatchesHostResponse(t *testing.T) {
	// An identical contact must produce the same speed on both sides, so the
	// host's canonical result cannot visibly contradict the prediction.
	paddle := Paddle{X: 240, Y: 380, VX: 2, VY: -12}

	m := NewMirror("ROOM01", (&sendSpy{}).send)
	m.ApplyUpdate(messages.PuckUpdate{X: 240, Y: 360})
	m.Step(paddle)

	a := NewAuthority("ROOM01", (&sendSpy{}).send)
	a.puck = hockey.PuckState{X: 240, Y: 360, Locked: true}
	a.Step(paddle, Paddle{X: 1000, Y: 1500})

	mp, ap := m.Puck(), a.Puck()
	if math.Abs(math.Hypot(mp.VX, mp.VY)-math.Hypot(ap.VX, ap.VY)) > 1e-9 {
		t.Fatalf("response speeds diverge: mirror (%f, %f) vs host (%f, %f)",
			mp.VX, mp.VY, ap.VX, ap.VY)
	}
}

func TestMirror_ResetReServes(t *testing.T) {
	m := NewMirror("ROOM01", (&sendSpy{}).send)
	m.ApplyUpdate(messages.PuckUpdate{X: 10, Y: 10, VX: 9, VY: 9})
	m.Reset()

	puck := m.Puck()
	if puck.X != hockey.FieldWidth/2 || puck.Y != hockey.FieldHeight/2 || !puck.Locked {
		t.Fatalf("reset did not re-serve: %+v", puck)
	}
}

func TestMirrorPaddle_ReflectsAboutCenter(t *testing.T) {
	x, y := MirrorPaddle(100, 650)
	if x != hockey.FieldWidth-100 || y != hockey.FieldHeight-650 {
		t.Fatalf("got (%f, %f)", x, y)
	}
}

func TestPaddle_MoveToRecordsVelocity(t *testing.T) {
	var p Paddle
	p.Place(100, 600)
	p.MoveTo(110, 590)

	if p.VX != 10 || p.VY != -10 {
		t.Fatalf("velocity (%f, %f), want (10, -10)", p.VX, p.VY)
	}

	p.Place(200, 500)
	if p.VX != 0 || p.VY != 0 {
		t.Fatalf("Place must not register movement, got (%f, %f)", p.VX, p.VY)
	}
}
