package gamemath

import "testing"

func TestMirrorPosition_IsInvolution(t *testing.T) {
	points := []struct{ x, y float64 }{
		{0, 0},
		{240, 360},
		{480, 720},
		{13.5, 699.25},
	}
	for _, p := range points {
		mx, my := MirrorPosition(p.x, p.y, 480, 720)
		rx, ry := MirrorPosition(mx, my, 480, 720)
		if rx != p.x || ry != p.y {
			t.Fatalf("mirror twice of (%f, %f) gave (%f, %f)", p.x, p.y, rx, ry)
		}
	}
}

func TestMirrorPosition_ReflectsAboutCenter(t *testing.T) {
	x, y := MirrorPosition(100, 50, 480, 720)
	if x != 380 || y != 670 {
		t.Fatalf("expected (380, 670), got (%f, %f)", x, y)
	}
}

func TestMirrorVelocity_IsInvolution(t *testing.T) {
	vx, vy := MirrorVelocity(MirrorVelocity(3.5, -2))
	if vx != 3.5 || vy != -2 {
		t.Fatalf("expected (3.5, -2), got (%f, %f)", vx, vy)
	}
}
