package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/veggie-arcade/airhockey-mp/components"
	"github.com/veggie-arcade/airhockey-mp/game"
	"github.com/veggie-arcade/airhockey-mp/network"
)

// localAndRemote finds the two paddle entries.
func localAndRemote(e *ecs.ECS) (local, remote *components.PaddleData) {
	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		if paddle.Local {
			local = paddle
		} else {
			remote = paddle
		}
	})
	return local, remote
}

func simActive(e *ecs.ECS) bool {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return false
	}
	view := components.Match.Get(entry).View
	return view == components.ViewPlaying || view == components.ViewGoalPause
}

// NewHostSimSystem runs the canonical simulation on the host: mirror the
// opponent's paddle reports into the host frame, apply any forwarded
// impulses, step the authority, and copy the result into the puck entity.
func NewHostSimSystem(auth *game.Authority, net *network.Client) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		local, remote := localAndRemote(e)
		if local == nil || remote == nil {
			return
		}

		if msg, ok := net.LatestOpponentPaddle(); ok {
			remote.MoveTo(game.MirrorPaddle(msg.X, msg.Y))
		}

		if !simActive(e) {
			return
		}

		for _, hit := range net.DrainPuckHits() {
			auth.ApplyRemoteImpulse(hit.VX, hit.VY)
		}

		auth.Step(local.Paddle, remote.Paddle)

		if entry, ok := components.Puck.First(e.World); ok {
			components.Puck.Get(entry).State = auth.Puck()
		}
	}
}

// NewMirrorSimSystem runs the non-host side: install the latest canonical
// snapshot mirrored into the local frame, predict contacts against the
// local paddle, and mirror the host's paddle reports for display.
func NewMirrorSimSystem(mir *game.Mirror, net *network.Client) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		local, remote := localAndRemote(e)
		if local == nil || remote == nil {
			return
		}

		if msg, ok := net.LatestOpponentPaddle(); ok {
			remote.MoveTo(game.MirrorPaddle(msg.X, msg.Y))
		}

		if !simActive(e) {
			return
		}

		if msg, ok := net.LatestPuckUpdate(); ok {
			mir.ApplyUpdate(msg)
		}
		mir.Step(local.Paddle)

		if entry, ok := components.Puck.First(e.World); ok {
			components.Puck.Get(entry).State = mir.Puck()
		}
	}
}
