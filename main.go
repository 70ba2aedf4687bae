package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/veggie-arcade/airhockey-mp/config"
	"github.com/veggie-arcade/airhockey-mp/fonts"
	"github.com/veggie-arcade/airhockey-mp/network"
	"github.com/veggie-arcade/airhockey-mp/scenes"
	"github.com/veggie-arcade/airhockey-mp/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(net *network.Client) *Game {
	fonts.LoadAll()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g, net)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	addr := flag.String("addr", "localhost:7373", "Relay server address")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Air Hockey")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	net := network.NewClient()
	net.Connect(*addr)

	if err := ebiten.RunGame(NewGame(net)); err != nil {
		log.Fatal(err)
	}
}
