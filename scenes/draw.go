package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// drawTextCentered draws s horizontally centered on x at baseline y.
func drawTextCentered(screen *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Dx()/2, y, c)
}
