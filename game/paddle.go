// Package game runs the client-side puck simulation: the host's canonical
// Authority and the non-host's predicting Mirror. Both express everything in
// the local player's coordinate frame; the mirror transform is applied at
// the wire boundary.
package game

// Paddle is a paddle position with the velocity derived from its most
// recent move. The velocity feeds the hit-strength term of the collision
// response.
type Paddle struct {
	X, Y   float64
	VX, VY float64
}

// MoveTo updates the paddle position and records the per-frame velocity.
func (p *Paddle) MoveTo(x, y float64) {
	p.VX = x - p.X
	p.VY = y - p.Y
	p.X = x
	p.Y = y
}

// Place sets the position without registering movement.
func (p *Paddle) Place(x, y float64) {
	p.X = x
	p.Y = y
	p.VX = 0
	p.VY = 0
}
