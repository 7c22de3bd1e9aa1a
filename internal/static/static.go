// Package static embeds the stylesheet and script served under /static.
package static

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets/*
var assets embed.FS

// FS returns the embedded assets rooted at the assets directory.
func FS() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Handler serves the embedded assets.
func Handler() http.Handler {
	return http.FileServer(http.FS(FS()))
}
