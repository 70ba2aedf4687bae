package components

import (
	"github.com/yohamta/donburi"

	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
)

// PuckData is the rendered puck state, always in the local frame.
type PuckData struct {
	State hockey.PuckState
}

var Puck = donburi.NewComponentType[PuckData]()
