package messages

// PaddleMove reports the sender's own paddle position, in the sender's
// frame. The server relays it to the other member as OpponentPaddle.
type PaddleMove struct {
	RoomID string
	X, Y   float64
}

// OpponentPaddle is the other player's paddle position, pre-mirror: the
// receiver applies the mirror transform before rendering.
type OpponentPaddle struct {
	X, Y float64
}

// PuckMove publishes new canonical puck state. Host only; the server drops
// it from anyone else.
type PuckMove struct {
	RoomID string
	X, Y   float64
	VX, VY float64
	Locked bool
}

// PuckUpdate is the canonical puck state broadcast to the non-host,
// pre-mirror, once per host frame.
type PuckUpdate struct {
	X, Y   float64
	VX, VY float64
	Locked bool
}

// PuckHit asks the host to apply an impulse after a predicted paddle
// contact on the non-host side. The velocity is expressed in the sender's
// own frame; the host negates both components before applying it. Non-host
// only; relayed by the server to the host unchanged.
type PuckHit struct {
	RoomID string
	VX, VY float64
}
