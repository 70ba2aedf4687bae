// Package config holds client-side presentation configuration. Gameplay
// tuning lives in shared/hockey so the server never depends on this.
package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config contains the window dimensions.
type Config struct {
	Width  int
	Height int
}

// C is the global client configuration.
var C *Config

// Default is the render layer every renderer draws on.
const Default ecs.LayerID = 0

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	FieldLine    = color.RGBA{R: 90, G: 100, B: 130, A: 255}
	FieldBG      = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	// Window matches the field; HUD text is drawn over the ice.
	C = &Config{
		Width:  480,
		Height: 720,
	}
}
