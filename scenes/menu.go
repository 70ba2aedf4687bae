package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	cfg "github.com/veggie-arcade/airhockey-mp/config"
	"github.com/veggie-arcade/airhockey-mp/fonts"
	"github.com/veggie-arcade/airhockey-mp/network"
	"github.com/veggie-arcade/airhockey-mp/shared/messages"
	"github.com/veggie-arcade/airhockey-mp/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type menuOption int

const (
	menuRandomMatch menuOption = iota
	menuCreateLobby
	menuJoinLobby
	menuOptionCount
)

var menuLabels = [menuOptionCount]string{
	"Random match",
	"Create lobby",
	"Join lobby with code",
}

// MenuScene is the entry screen: display name, then one of the three ways
// into a room.
type MenuScene struct {
	sceneChanger SceneChanger
	net          *network.Client

	name       string
	code       string
	codeEntry  bool
	selected   menuOption
	statusText string

	runes []rune
}

func NewMenuScene(sc SceneChanger, net *network.Client) *MenuScene {
	name := "player"
	if profile, err := systems.LoadProfile(); err == nil && profile != nil && profile.Name != "" {
		name = profile.Name
	}
	return &MenuScene{sceneChanger: sc, net: net, name: name}
}

// NewMenuSceneWithStatus returns to the menu showing a one-line notice,
// e.g. a lobby error or a forfeit win.
func NewMenuSceneWithStatus(sc SceneChanger, net *network.Client, status string) *MenuScene {
	m := NewMenuScene(sc, net)
	m.statusText = status
	return m
}

func (ms *MenuScene) Update() {
	if ms.codeEntry {
		ms.updateCodeEntry()
		return
	}

	ms.runes = ebiten.AppendInputChars(ms.runes[:0])
	for _, r := range ms.runes {
		if len(ms.name) < 12 {
			ms.name += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(ms.name) > 0 {
		ms.name = ms.name[:len(ms.name)-1]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && ms.selected > 0 {
		ms.selected--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && ms.selected < menuOptionCount-1 {
		ms.selected++
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ms.name != "" {
		_ = systems.SaveProfile(&systems.SavedProfile{Name: ms.name})
		switch ms.selected {
		case menuRandomMatch:
			_ = ms.net.SendMessage(messages.JoinRandom{Name: ms.name})
			ms.sceneChanger.ChangeScene(NewLobbyScene(ms.sceneChanger, ms.net, ms.name))
		case menuCreateLobby:
			_ = ms.net.SendMessage(messages.CreateLobby{Name: ms.name})
			ms.sceneChanger.ChangeScene(NewLobbyScene(ms.sceneChanger, ms.net, ms.name))
		case menuJoinLobby:
			ms.codeEntry = true
		}
	}
}

func (ms *MenuScene) updateCodeEntry() {
	ms.runes = ebiten.AppendInputChars(ms.runes[:0])
	for _, r := range ms.runes {
		if len(ms.code) < 6 {
			ms.code += string(toUpperRune(r))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(ms.code) > 0 {
		ms.code = ms.code[:len(ms.code)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ms.codeEntry = false
		ms.code = ""
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && len(ms.code) == 6 {
		_ = ms.net.SendMessage(messages.JoinLobby{LobbyID: ms.code, Name: ms.name})
		ms.sceneChanger.ChangeScene(NewLobbyScene(ms.sceneChanger, ms.net, ms.name))
	}
}

func toUpperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.FieldBG)

	drawTextCentered(screen, "AIR HOCKEY", fonts.Title.Get(), cfg.C.Width/2, 120, cfg.White)
	drawTextCentered(screen, "name: "+ms.name+"_", fonts.Main.Get(), cfg.C.Width/2, 200, cfg.LightGreen)

	if ms.codeEntry {
		drawTextCentered(screen, "lobby code: "+ms.code+"_", fonts.Main.Get(), cfg.C.Width/2, 300, cfg.White)
		drawTextCentered(screen, "ENTER to join, ESC to cancel", fonts.Small.Get(), cfg.C.Width/2, 340, cfg.FieldLine)
	} else {
		for i, label := range menuLabels {
			c := cfg.DarkBlue
			if menuOption(i) == ms.selected {
				c = cfg.LightBlue
				label = "> " + label
			}
			drawTextCentered(screen, label, fonts.Main.Get(), cfg.C.Width/2, 280+i*40, c)
		}
		drawTextCentered(screen, "arrows to choose, ENTER to confirm", fonts.Small.Get(), cfg.C.Width/2, 430, cfg.FieldLine)
	}

	if ms.statusText != "" {
		drawTextCentered(screen, ms.statusText, fonts.Main.Get(), cfg.C.Width/2, cfg.C.Height-80, cfg.Yellow)
	}
}
