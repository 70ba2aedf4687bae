package gamemath

import (
	"math"
	"testing"
)

func TestApplyFriction_ScalesVelocity(t *testing.T) {
	vx, vy := ApplyFriction(10, -4, 0.985, 0.05)
	if vx != 10*0.985 || vy != -4*0.985 {
		t.Fatalf("expected scaled velocity, got (%f, %f)", vx, vy)
	}
}

func TestApplyFriction_ParksSlowPuck(t *testing.T) {
	vx, vy := ApplyFriction(0.03, 0.02, 0.985, 0.05)
	if vx != 0 || vy != 0 {
		t.Fatalf("expected puck parked below stop threshold, got (%f, %f)", vx, vy)
	}
}

func TestClampSpeed_PreservesDirection(t *testing.T) {
	vx, vy := ClampSpeed(30, 40, 10)
	speed := math.Hypot(vx, vy)
	if math.Abs(speed-10) > 1e-9 {
		t.Fatalf("expected speed clamped to 10, got %f", speed)
	}
	// Direction of (30, 40) is (0.6, 0.8).
	if math.Abs(vx-6) > 1e-9 || math.Abs(vy-8) > 1e-9 {
		t.Fatalf("expected direction preserved, got (%f, %f)", vx, vy)
	}
}

func TestClampSpeed_LeavesSlowPuckAlone(t *testing.T) {
	vx, vy := ClampSpeed(3, 4, 10)
	if vx != 3 || vy != 4 {
		t.Fatalf("expected velocity unchanged, got (%f, %f)", vx, vy)
	}
}

func TestInGoalSpan(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"center", 240, true},
		{"left edge", 160, true},
		{"right edge", 320, true},
		{"left of mouth", 159.9, false},
		{"right of mouth", 320.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InGoalSpan(tt.x, 160, 320); got != tt.want {
				t.Fatalf("InGoalSpan(%f) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestCircleContact_NoOverlap(t *testing.T) {
	if _, _, _, hit := CircleContact(100, 100, 200, 200, 42); hit {
		t.Fatal("expected no contact for distant circles")
	}
}

func TestCircleContact_NormalAndOverlap(t *testing.T) {
	// Puck 30 units right of the paddle, with a combined radius of 42.
	nx, ny, overlap, hit := CircleContact(130, 100, 100, 100, 42)
	if !hit {
		t.Fatal("expected contact")
	}
	if nx != 1 || ny != 0 {
		t.Fatalf("expected normal (1, 0), got (%f, %f)", nx, ny)
	}
	if math.Abs(overlap-12) > 1e-9 {
		t.Fatalf("expected overlap 12, got %f", overlap)
	}
}

func TestCircleContact_ConcentricFallback(t *testing.T) {
	nx, ny, _, hit := CircleContact(100, 100, 100, 100, 42)
	if !hit {
		t.Fatal("expected contact for concentric circles")
	}
	if math.Hypot(nx, ny) == 0 {
		t.Fatal("expected a usable non-zero normal")
	}
}

func TestHitResponse_NeverExceedsMaxSpeed(t *testing.T) {
	velocities := []struct{ vx, vy, pvx, pvy float64 }{
		{0, 0, 0, 0},
		{16, 0, 0, 0},
		{16, 16, 40, 40},
		{-16, 12, -30, 5},
		{0.1, -0.1, 100, -100},
	}
	for _, v := range velocities {
		vx, vy := HitResponse(v.vx, v.vy, 0.6, 0.8, v.pvx, v.pvy, 0.6, 16)
		if speed := math.Hypot(vx, vy); speed > 16+1e-9 {
			t.Fatalf("response speed %f exceeds max for input %+v", speed, v)
		}
	}
}

func TestHitResponse_RedirectsAlongNormal(t *testing.T) {
	// Puck moving straight down at speed 5 hits a still paddle; the normal
	// points straight up, so the puck leaves straight up at the same speed.
	vx, vy := HitResponse(0, 5, 0, -1, 0, 0, 0.6, 16)
	if math.Abs(vx) > 1e-9 || math.Abs(vy+5) > 1e-9 {
		t.Fatalf("expected (0, -5), got (%f, %f)", vx, vy)
	}
}
