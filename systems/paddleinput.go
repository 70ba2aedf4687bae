package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/veggie-arcade/airhockey-mp/components"
	"github.com/veggie-arcade/airhockey-mp/shared/gamemath"
	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
	"github.com/veggie-arcade/airhockey-mp/shared/messages"
)

// NewPaddleInputSystem returns an update system that drives the local paddle
// with the mouse cursor, clamped to the player's own half, and reports the
// position to the room each frame. Positions stay in the local frame; the
// opponent mirrors them on receipt.
func NewPaddleInputSystem(send func(msg any) error, roomID func() string) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		room := roomID()
		if room == "" {
			return
		}

		cx, cy := ebiten.CursorPosition()
		x := gamemath.Clamp(float64(cx), hockey.PaddleRadius, hockey.FieldWidth-hockey.PaddleRadius)
		y := gamemath.Clamp(float64(cy), hockey.FieldHeight/2, hockey.FieldHeight-hockey.PaddleRadius)

		components.Paddle.Each(e.World, func(entry *donburi.Entry) {
			paddle := components.Paddle.Get(entry)
			if !paddle.Local {
				return
			}
			paddle.MoveTo(x, y)
			_ = send(messages.PaddleMove{RoomID: room, X: paddle.X, Y: paddle.Y})
		})
	}
}
