package landing

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Assets is the stylesheet and motion script, rooted so that
// "landing.css" serves at StylesheetPath.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
