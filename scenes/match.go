package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/veggie-arcade/airhockey-mp/components"
	cfg "github.com/veggie-arcade/airhockey-mp/config"
	"github.com/veggie-arcade/airhockey-mp/game"
	"github.com/veggie-arcade/airhockey-mp/network"
	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
	"github.com/veggie-arcade/airhockey-mp/shared/messages"
	"github.com/veggie-arcade/airhockey-mp/systems"
)

// MatchScene runs one match from the first countdown through game over and
// any rematches. The host runs the canonical simulation; the other side
// mirrors it.
type MatchScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	net          *network.Client

	name   string
	roomID string
	isHost bool

	auth   *game.Authority
	mirror *game.Mirror

	matchEntry *donburi.Entry
	puckEntry  *donburi.Entry
}

func NewMatchScene(sc SceneChanger, net *network.Client, name, roomID, hostID string, names map[string]string) *MatchScene {
	ms := &MatchScene{
		sceneChanger: sc,
		net:          net,
		name:         name,
		roomID:       roomID,
		isHost:       hostID == net.ClientID(),
	}

	send := net.SendMessage
	if ms.isHost {
		ms.auth = game.NewAuthority(roomID, send)
	} else {
		ms.mirror = game.NewMirror(roomID, send)
	}

	ms.configure(hostID, names)
	return ms
}

func (ms *MatchScene) configure(hostID string, names map[string]string) {
	ms.ecsWorld = ecs.NewECS(donburi.NewWorld())
	world := ms.ecsWorld.World

	matchEntity := world.Create(components.Match)
	ms.matchEntry = world.Entry(matchEntity)
	components.Match.Set(ms.matchEntry, &components.MatchData{
		RoomID:        ms.roomID,
		HostID:        hostID,
		IsHost:        ms.isHost,
		Names:         names,
		View:          components.ViewCountdown,
		CountdownStep: 3,
	})

	local := world.Entry(world.Create(components.Paddle))
	components.Paddle.Set(local, &components.PaddleData{
		Paddle: game.Paddle{X: hockey.FieldWidth / 2, Y: hockey.FieldHeight - 60},
		Local:  true,
	})
	remote := world.Entry(world.Create(components.Paddle))
	components.Paddle.Set(remote, &components.PaddleData{
		Paddle: game.Paddle{X: hockey.FieldWidth / 2, Y: 60},
	})

	puckEntity := world.Create(components.Puck)
	ms.puckEntry = world.Entry(puckEntity)
	components.Puck.Set(ms.puckEntry, &components.PuckData{State: hockey.ServePuck()})

	ms.ecsWorld.AddSystem(systems.NewPaddleInputSystem(ms.net.SendMessage, func() string { return ms.roomID }))
	if ms.isHost {
		ms.ecsWorld.AddSystem(systems.NewHostSimSystem(ms.auth, ms.net))
	} else {
		ms.ecsWorld.AddSystem(systems.NewMirrorSimSystem(ms.mirror, ms.net))
	}
	ms.ecsWorld.AddSystem(systems.UpdateCountdown)

	ms.ecsWorld.AddRenderer(cfg.Default, systems.DrawField)
	ms.ecsWorld.AddRenderer(cfg.Default, systems.DrawEntities)
	ms.ecsWorld.AddRenderer(cfg.Default, systems.DrawHUD)
	ms.ecsWorld.AddRenderer(cfg.Default, systems.DrawOverlays)
}

func (ms *MatchScene) Update() {
	if ms.net.State() != network.StateConnected {
		ms.sceneChanger.ChangeScene(NewMenuSceneWithStatus(ms.sceneChanger, ms.net,
			"connection lost"))
		return
	}

	match := components.Match.Get(ms.matchEntry)

	for range ms.net.DrainStartGame() {
		match.View = components.ViewPlaying
		match.Scores = hockey.Scores{}
		ms.resetPuck()
	}
	for _, msg := range ms.net.DrainScores() {
		match.Scores = msg.Scores
		match.LastScorer = msg.Scorer
		match.View = components.ViewGoalPause
	}
	for range ms.net.DrainResetPuck() {
		match.View = components.ViewPlaying
		ms.resetPuck()
	}
	for _, msg := range ms.net.DrainGameOver() {
		match.View = components.ViewGameOver
		match.Winner = msg.Winner
		match.RematchAsked = false
	}
	for range ms.net.DrainRematchAccepted() {
		match.Scores = hockey.Scores{}
	}
	for range ms.net.DrainCountdowns() {
		match.View = components.ViewCountdown
		match.CountdownStep = 3
		match.StepElapsed = 0
		match.Tween = nil
		ms.resetPuck()
	}
	for range ms.net.DrainPlayerLeft() {
		ms.sceneChanger.ChangeScene(NewMenuSceneWithStatus(ms.sceneChanger, ms.net,
			"opponent left - you win by forfeit"))
		return
	}

	if match.View == components.ViewGameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) && !match.RematchAsked {
			match.RematchAsked = true
			_ = ms.net.SendMessage(messages.RequestRematch{RoomID: ms.roomID, Name: ms.name})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		_ = ms.net.SendMessage(messages.LeaveGame{RoomID: ms.roomID})
		ms.sceneChanger.ChangeScene(NewMenuScene(ms.sceneChanger, ms.net))
		return
	}

	ms.ecsWorld.Update()
}

func (ms *MatchScene) resetPuck() {
	if ms.auth != nil {
		ms.auth.Reset()
	}
	if ms.mirror != nil {
		ms.mirror.Reset()
	}
	components.Puck.Get(ms.puckEntry).State = hockey.ServePuck()
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	ms.ecsWorld.Draw(screen)
}
