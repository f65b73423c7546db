// Package web holds the assets served under /static.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static/*.jpg
var staticFiles embed.FS

// Static is the embedded asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
