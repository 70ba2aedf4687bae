// Package gamemath holds the pure math used by the puck simulation. The
// host's canonical tick and the non-host's prediction both go through these
// functions so the two sides compute identical responses.
package gamemath

import "math"

// ApplyFriction scales a velocity by factor and parks it at zero once its
// magnitude drops below stop, so the puck never drifts forever.
func ApplyFriction(vx, vy, factor, stop float64) (float64, float64) {
	vx *= factor
	vy *= factor
	if math.Hypot(vx, vy) < stop {
		return 0, 0
	}
	return vx, vy
}

// ClampSpeed limits the magnitude of a velocity to max, preserving direction.
func ClampSpeed(vx, vy, max float64) (float64, float64) {
	speed := math.Hypot(vx, vy)
	if speed <= max || speed == 0 {
		return vx, vy
	}
	scale := max / speed
	return vx * scale, vy * scale
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// InGoalSpan reports whether x lies inside the goal mouth [min, max].
func InGoalSpan(x, min, max float64) bool {
	return x >= min && x <= max
}

// CircleContact tests two circles for overlap. On contact it returns the
// unit normal pointing from the paddle center toward the puck center and the
// penetration depth. A puck exactly on top of the paddle gets an arbitrary
// fixed normal so callers never divide by zero.
func CircleContact(puckX, puckY, paddleX, paddleY, radiusSum float64) (nx, ny, overlap float64, hit bool) {
	dx := puckX - paddleX
	dy := puckY - paddleY
	dist := math.Hypot(dx, dy)
	if dist >= radiusSum {
		return 0, 0, 0, false
	}
	if dist == 0 {
		return 0, -1, radiusSum, true
	}
	return dx / dist, dy / dist, radiusSum - dist, true
}

// HitResponse computes the puck velocity after paddle contact: the puck's
// existing speed redirected along the contact normal, plus the paddle's own
// velocity scaled by strength, clamped to maxSpeed.
func HitResponse(vx, vy, nx, ny, paddleVX, paddleVY, strength, maxSpeed float64) (float64, float64) {
	speed := math.Hypot(vx, vy)
	outVX := nx*speed + paddleVX*strength
	outVY := ny*speed + paddleVY*strength
	return ClampSpeed(outVX, outVY, maxSpeed)
}
