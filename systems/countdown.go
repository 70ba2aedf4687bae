package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/veggie-arcade/airhockey-mp/components"
)

const countdownDT = 1.0 / 60.0

// UpdateCountdown advances the 3-step countdown overlay. The step cadence is
// purely local; the server flips the room to playing on its own timer and
// the scene switches views when StartGame arrives.
func UpdateCountdown(e *ecs.ECS) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(entry)
	if match.View != components.ViewCountdown {
		return
	}

	if match.Tween == nil {
		match.Tween = gween.New(0, 255, 0.6, ease.OutQuad)
	}

	match.StepElapsed += countdownDT
	if match.StepElapsed >= 1 && match.CountdownStep > 1 {
		match.CountdownStep--
		match.StepElapsed = 0
		match.Tween = gween.New(0, 255, 0.6, ease.OutQuad)
	}
	match.Alpha, _ = match.Tween.Update(countdownDT)
}
