package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	cfg "github.com/veggie-arcade/airhockey-mp/config"
	"github.com/veggie-arcade/airhockey-mp/fonts"
	"github.com/veggie-arcade/airhockey-mp/network"
	"github.com/veggie-arcade/airhockey-mp/shared/messages"
)

// LobbyScene covers everything between leaving the menu and the first
// countdown: waiting for a pairing or a code, showing the code to share,
// and the ready-up handshake once a match is found.
type LobbyScene struct {
	sceneChanger SceneChanger
	net          *network.Client
	name         string

	code     string
	match    *messages.MatchFound
	myReady  bool
	oppReady bool
}

func NewLobbyScene(sc SceneChanger, net *network.Client, name string) *LobbyScene {
	return &LobbyScene{sceneChanger: sc, net: net, name: name}
}

func (ls *LobbyScene) Update() {
	for _, msg := range ls.net.DrainLobbyCreated() {
		ls.code = msg.LobbyID
	}
	for _, msg := range ls.net.DrainLobbyErrors() {
		ls.sceneChanger.ChangeScene(NewMenuSceneWithStatus(ls.sceneChanger, ls.net, msg.Reason))
		return
	}
	for _, msg := range ls.net.DrainMatchFound() {
		found := msg
		ls.match = &found
		ls.myReady = false
		ls.oppReady = false
	}
	for range ls.net.DrainOpponentReady() {
		ls.oppReady = true
	}
	for range ls.net.DrainCountdowns() {
		ls.sceneChanger.ChangeScene(NewMatchScene(
			ls.sceneChanger, ls.net, ls.name,
			ls.match.RoomID, ls.match.HostID, ls.match.Names))
		return
	}
	for range ls.net.DrainPlayerLeft() {
		ls.sceneChanger.ChangeScene(NewMenuSceneWithStatus(ls.sceneChanger, ls.net,
			"opponent left the lobby"))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && ls.match != nil && !ls.myReady {
		ls.myReady = true
		_ = ls.net.SendMessage(messages.PlayerReady{RoomID: ls.match.RoomID})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ls.match != nil {
			_ = ls.net.SendMessage(messages.LeaveGame{RoomID: ls.match.RoomID})
		}
		ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger, ls.net))
	}
}

func (ls *LobbyScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.FieldBG)
	drawTextCentered(screen, "LOBBY", fonts.Title.Get(), cfg.C.Width/2, 120, cfg.White)

	if ls.code != "" && ls.match == nil {
		drawTextCentered(screen, "share this code:", fonts.Main.Get(), cfg.C.Width/2, 240, cfg.White)
		drawTextCentered(screen, ls.code, fonts.Title.Get(), cfg.C.Width/2, 300, cfg.LightGreen)
	}

	switch {
	case ls.match == nil:
		drawTextCentered(screen, "waiting for an opponent...", fonts.Main.Get(), cfg.C.Width/2, 400, cfg.FieldLine)
	default:
		y := 240
		for id, name := range ls.match.Names {
			line := name
			if id == ls.net.ClientID() {
				line += " (you)"
			}
			if id == ls.match.HostID {
				line += " [host]"
			}
			drawTextCentered(screen, line, fonts.Main.Get(), cfg.C.Width/2, y, cfg.White)
			y += 30
		}

		status := "press SPACE when ready"
		if ls.myReady && !ls.oppReady {
			status = "waiting for opponent to ready up..."
		} else if !ls.myReady && ls.oppReady {
			status = "opponent is ready - press SPACE"
		}
		drawTextCentered(screen, status, fonts.Main.Get(), cfg.C.Width/2, 400, cfg.LightGreen)
	}

	drawTextCentered(screen, "ESC to leave", fonts.Small.Get(), cfg.C.Width/2, cfg.C.Height-60, cfg.FieldLine)
}
