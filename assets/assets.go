// Package assets embeds the static web content the server exposes next to
// the websocket endpoint.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:web
var webFS embed.FS

// WebFS returns the embedded web root.
func WebFS() fs.FS {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	return sub
}
