package gamemath

// The two peers render the field from opposite ends, a 180° rotation. Every
// position crossing the wire is mirrored about the field center and every
// velocity negated, and the transform is its own inverse:
// Mirror(Mirror(x)) == x.

// MirrorPosition reflects a point about the center of a width×height field.
func MirrorPosition(x, y, width, height float64) (float64, float64) {
	return width - x, height - y
}

// MirrorVelocity negates both velocity components.
func MirrorVelocity(vx, vy float64) (float64, float64) {
	return -vx, -vy
}
