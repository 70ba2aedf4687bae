package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/veggie-arcade/airhockey-mp/components"
	cfg "github.com/veggie-arcade/airhockey-mp/config"
	"github.com/veggie-arcade/airhockey-mp/fonts"
	"github.com/veggie-arcade/airhockey-mp/shared/hockey"
)

// DrawField paints the rink: border, center line and circle, and the two
// goal mouths. The local player always defends the bottom end.
func DrawField(_ *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.FieldBG)

	w := float32(hockey.FieldWidth)
	h := float32(hockey.FieldHeight)

	vector.StrokeRect(screen, 1, 1, w-2, h-2, 2, cfg.FieldLine, true)
	vector.StrokeLine(screen, 0, h/2, w, h/2, 2, cfg.FieldLine, true)
	vector.StrokeCircle(screen, w/2, h/2, 60, 2, cfg.FieldLine, true)

	// Goal mouths, highlighted so the span reads at a glance.
	min := float32(hockey.GoalSpanMin)
	max := float32(hockey.GoalSpanMax)
	vector.StrokeLine(screen, min, 2, max, 2, 5, cfg.Red, true)
	vector.StrokeLine(screen, min, h-2, max, h-2, 5, cfg.LightBlue, true)
}

// DrawEntities renders the two paddles and the puck.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		c := cfg.Red
		if paddle.Local {
			c = cfg.LightBlue
		}
		vector.DrawFilledCircle(screen, float32(paddle.X), float32(paddle.Y),
			float32(hockey.PaddleRadius), c, true)
		vector.DrawFilledCircle(screen, float32(paddle.X), float32(paddle.Y),
			float32(hockey.PaddleRadius)/2, cfg.FieldBG, true)
	})

	if entry, ok := components.Puck.First(e.World); ok {
		puck := components.Puck.Get(entry)
		c := cfg.White
		if puck.State.Locked {
			c = cfg.FieldLine
		}
		vector.DrawFilledCircle(screen, float32(puck.State.X), float32(puck.State.Y),
			float32(hockey.PuckRadius), c, true)
	}
}

// DrawHUD renders the score line and player names.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(entry)

	score := fmt.Sprintf("%d - %d", match.TheirScore(), match.MyScore())
	drawCentered(screen, score, fonts.Score.Get(), cfg.C.Width/2, 40, cfg.White)
}

// DrawOverlays renders the countdown digit, the goal flash, and the
// game-over card on top of everything else.
func DrawOverlays(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(entry)

	switch match.View {
	case components.ViewCountdown:
		alpha := uint8(match.Alpha)
		digit := fmt.Sprintf("%d", match.CountdownStep)
		drawCentered(screen, digit, fonts.Title.Get(), cfg.C.Width/2, cfg.C.Height/2,
			color.RGBA{R: 255, G: 255, B: 255, A: alpha})

	case components.ViewGoalPause:
		msg := "GOAL!"
		if match.LastScorer != "" && match.LastScorer != match.MySide() {
			msg = "GOAL AGAINST"
		}
		drawCentered(screen, msg, fonts.Title.Get(), cfg.C.Width/2, cfg.C.Height/2, cfg.Yellow)

	case components.ViewGameOver:
		vector.DrawFilledRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height),
			cfg.BlackOverlay, false)

		headline := "YOU WIN"
		if match.Winner != match.MySide() {
			headline = "YOU LOSE"
		}
		drawCentered(screen, headline, fonts.Title.Get(), cfg.C.Width/2, cfg.C.Height/2-40, cfg.White)

		prompt := "R: rematch    ESC: leave"
		if match.RematchAsked {
			prompt = "waiting for opponent...    ESC: leave"
		}
		drawCentered(screen, prompt, fonts.Main.Get(), cfg.C.Width/2, cfg.C.Height/2+20, cfg.LightGreen)
	}
}

// drawCentered draws s horizontally centered on x at baseline y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Dx()/2, y, c)
}
