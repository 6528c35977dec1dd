package webui

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed dist/*
var dist embed.FS

// Bundle exposes the embedded recruitment site for serving.
type Bundle struct {
	DistFS    fs.FS           // Root dist filesystem.
	AssetsFS  http.FileSystem // Assets subdirectory filesystem.
	IndexHTML []byte          // SPA entry point.
}

// Load returns the embedded site. It only fails if the build omitted dist/.
func Load() (Bundle, error) {
	distFS, errSub := fs.Sub(dist, "dist")
	if errSub != nil {
		return Bundle{}, errSub
	}
	assetsFS, errSubAssets := fs.Sub(dist, "dist/assets")
	if errSubAssets != nil {
		return Bundle{}, errSubAssets
	}
	indexHTML, errReadFile := dist.ReadFile("dist/index.html")
	if errReadFile != nil {
		return Bundle{}, errReadFile
	}
	return Bundle{
		DistFS:    distFS,
		AssetsFS:  http.FS(assetsFS),
		IndexHTML: indexHTML,
	}, nil
}
