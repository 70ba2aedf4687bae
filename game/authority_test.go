package game

import (
	"math"
	"testing"

	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
	"github.com/veggie-arcade/airhockey-mp/shared/messages"
)

type sendSpy struct {
	sent []any
}

func (s *sendSpy) send(msg any) error {
	s.sent = append(s.sent, msg)
	return nil
}

func sentOfType[T any](s *sendSpy) []T {
	var out []T
	for _, msg := range s.sent {
		if m, ok := msg.(T); ok {
			out = append(out, m)
		}
	}
	return out
}

// farPaddles keeps both paddles out of reach so a step only integrates.
func farPaddles() (Paddle, Paddle) {
	return Paddle{X: -500, Y: -500}, Paddle{X: 1000, Y: 1500}
}

func TestAuthority_ServesLocked(t *testing.T) {
	a := NewAuthority("ROOM01", (&sendSpy{}).send)
	puck := a.Puck()
	if !puck.Locked {
		t.Fatal("served puck must be locked")
	}
	if puck.X != hockey.FieldWidth/2 || puck.Y != hockey.FieldHeight/2 {
		t.Fatalf("serve off center: (%f, %f)", puck.X, puck.Y)
	}
}

func TestAuthority_LockedPuckDoesNotDrift(t *testing.T) {
	spy := &sendSpy{}
	a := NewAuthority("ROOM01", spy.send)
	local, remote := farPaddles()

	before := a.Puck()
	a.Step(local, remote)
	after := a.Puck()
	if after != before {
		t.Fatalf("locked puck moved: %+v -> %+v", before, after)
	}
	if len(sentOfType[messages.PuckMove](spy)) != 1 {
		t.Fatal("snapshot not published for a locked puck")
	}
}

func TestAuthority_FrictionSlowsPuck(t *testing.T) {
	a := NewAuthority("ROOM01", (&sendSpy{}).send)
	a.puck = hockey.PuckState{X: 240, Y: 360, VX: 8, VY: 0}
	local, remote := farPaddles()

	a.Step(local, remote)
	puck := a.Puck()
	if puck.VX >= 8 || puck.VX <= 0 {
		t.Fatalf("expected friction to slow the puck, got vx=%f", puck.VX)
	}
	if puck.X <= 240 {
		t.Fatalf("puck did not advance: x=%f", puck.X)
	}
}

func TestAuthority_SideWallReflects(t *testing.T) {
	a := NewAuthority("ROOM01", (&sendSpy{}).send)
	a.puck = hockey.PuckState{X: hockey.FieldWidth - hockey.PuckRadius - 1, Y: 360, VX: 10, VY: 0}
	local, remote := farPaddles()

	a.Step(local, remote)
	puck := a.Puck()
	if puck.VX >= 0 {
		t.Fatalf("expected reflection off the right wall, vx=%f", puck.VX)
	}
	if puck.X != hockey.FieldWidth-hockey.PuckRadius {
		t.Fatalf("puck escaped the field: x=%f", puck.X)
	}
}

func TestAuthority_TopEdgeOutsideGoalReflects(t *testing.T) {
	spy := &sendSpy{}
	a := NewAuthority("ROOM01", spy.send)
	// Heading for the top edge well left of the goal mouth.
	a.puck = hockey.PuckState{X: 60, Y: hockey.PuckRadius + 2, VX: 0, VY: -10}
	local, remote := farPaddles()

	a.Step(local, remote)
	puck := a.Puck()
	if puck.VY <= 0 {
		t.Fatalf("expected reflection off the end wall, vy=%f", puck.VY)
	}
	if len(sentOfType[messages.GoalScored](spy)) != 0 {
		t.Fatal("goal reported outside the goal mouth")
	}
}

func TestAuthority_GoalInTopMouth(t *testing.T) {
	spy := &sendSpy{}
	a := NewAuthority("ROOM01", spy.send)
	// Dead center of the goal mouth, heading into the opponent's end.
	a.puck = hockey.PuckState{X: hockey.FieldWidth / 2, Y: hockey.PuckRadius + 2, VX: 0, VY: -10}
	local, remote := farPaddles()

	a.Step(local, remote)

	goals := sentOfType[messages.GoalScored](spy)
	if len(goals) != 1 {
		t.Fatalf("expected one goal report, got %d", len(goals))
	}
	if goals[0].Scorer != hockey.SideBottom {
		t.Fatalf("scorer %s, want bottom (host attacks the top end)", goals[0].Scorer)
	}
	if goals[0].RoomID != "ROOM01" {
		t.Fatalf("room id %q", goals[0].RoomID)
	}

	puck := a.Puck()
	if !puck.Locked || puck.VX != 0 || puck.VY != 0 {
		t.Fatalf("puck not frozen after the goal: %+v", puck)
	}

	// The simulation stays suspended until Reset.
	a.Step(local, remote)
	if len(sentOfType[messages.GoalScored](spy)) != 1 {
		t.Fatal("goal reported twice")
	}

	a.Reset()
	puck = a.Puck()
	if puck.X != hockey.FieldWidth/2 || puck.Y != hockey.FieldHeight/2 || !puck.Locked {
		t.Fatalf("reset did not re-serve: %+v", puck)
	}
}

func TestAuthority_GoalInBottomMouth(t *testing.T) {
	spy := &sendSpy{}
	a := NewAuthority("ROOM01", spy.send)
	a.puck = hockey.PuckState{X: hockey.FieldWidth / 2, Y: hockey.FieldHeight - hockey.PuckRadius - 2, VX: 0, VY: 10}
	local, remote := farPaddles()

	a.Step(local, remote)

	goals := sentOfType[messages.GoalScored](spy)
	if len(goals) != 1 || goals[0].Scorer != hockey.SideTop {
		t.Fatalf("expected a goal for top, got %+v", goals)
	}
}

func TestAuthority_CollisionUnlocksAndPushesOut(t *testing.T) {
	a := NewAuthority("ROOM01", (&sendSpy{}).send)
	// Fast paddle arriving just below the locked serve.
	paddle := Paddle{
		X: hockey.FieldWidth / 2, Y: hockey.FieldHeight/2 + 20,
		VX: 0, VY: -12,
	}
	_, remote := farPaddles()

	a.Step(paddle, remote)
	puck := a.Puck()
	if puck.Locked {
		t.Fatal("contact must unlock the puck")
	}
	if puck.VY >= 0 {
		t.Fatalf("puck should move away from the paddle, vy=%f", puck.VY)
	}
	dist := math.Hypot(puck.X-paddle.X, puck.Y-paddle.Y)
	if dist < hockey.PuckRadius+hockey.PaddleRadius-1e-9 {
		t.Fatalf("puck still overlapping the paddle: dist=%f", dist)
	}
}

func TestAuthority_RemoteImpulseMirroredAndClamped(t *testing.T) {
	a := NewAuthority("ROOM01", (&sendSpy{}).send)

	a.ApplyRemoteImpulse(3, 4)
	puck := a.Puck()
	if puck.VX != -3 || puck.VY != -4 {
		t.Fatalf("impulse not mirrored: (%f, %f)", puck.VX, puck.VY)
	}
	if puck.Locked {
		t.Fatal("impulse must unlock the puck")
	}

	a.ApplyRemoteImpulse(300, 400)
	puck = a.Puck()
	if speed := math.Hypot(puck.VX, puck.VY); speed > hockey.MaxPuckSpeed+1e-9 {
		t.Fatalf("impulse not clamped: speed=%f", speed)
	}
}

func TestAuthority_RemoteImpulseIgnoredDuringGoal(t *testing.T) {
	a := NewAuthority("ROOM01", (&sendSpy{}).send)
	a.puck = hockey.PuckState{X: hockey.FieldWidth / 2, Y: hockey.PuckRadius + 2, VX: 0, VY: -10}
	local, remote := farPaddles()
	a.Step(local, remote)

	a.ApplyRemoteImpulse(5, 5)
	puck := a.Puck()
	if puck.VX != 0 || puck.VY != 0 || !puck.Locked {
		t.Fatalf("impulse accepted while a goal was pending: %+v", puck)
	}
}

func TestAuthority_PublishesEveryStep(t *testing.T) {
	spy := &sendSpy{}
	a := NewAuthority("ROOM01", spy.send)
	local, remote := farPaddles()

	for i := 0; i < 3; i++ {
		a.Step(local, remote)
	}
	moves := sentOfType[messages.PuckMove](spy)
	if len(moves) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(moves))
	}
	last := moves[len(moves)-1]
	if last.RoomID != "ROOM01" || !last.Locked {
		t.Fatalf("unexpected snapshot %+v", last)
	}
}
