package components

import (
	"github.com/yohamta/donburi"

	"github.com/veggie-arcade/airhockey-mp/game"
)

// PaddleData is one paddle in the local frame. Local marks the paddle the
// player controls; the other one mirrors the opponent's reports.
type PaddleData struct {
	game.Paddle
	Local bool
}

var Paddle = donburi.NewComponentType[PaddleData]()
