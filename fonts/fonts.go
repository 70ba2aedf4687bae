package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Main  FontName = "main"
	Small FontName = "small"
	Score FontName = "score"
	Title FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadAll parses the bundled typeface at every size used by the client.
func LoadAll() {
	LoadFontWithSize(Main, goregular.TTF, 16)
	LoadFontWithSize(Small, goregular.TTF, 12)
	LoadFontWithSize(Score, goregular.TTF, 24)
	LoadFontWithSize(Title, goregular.TTF, 40)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
