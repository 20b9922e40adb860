package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed static/*
var EmbeddedStaticFS embed.FS

//go:embed templates/*.html
var EmbeddedTemplatesFS embed.FS

// ListAssets returns the asset names under fsys, for the debug log at startup
func ListAssets(fsys fs.FS) ([]string, error) {
	var assets []string
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			assets = append(assets, name)
		}
		return nil
	})
	return assets, err
}

// StaticHandler serves the files of assets below the URL prefix.
// Directories are never listed; a path ending in "/" is a 404.
func StaticHandler(assets fs.FS, prefix string) gin.HandlerFunc {
	fileServer := http.FileServer(http.FS(assets))

	return func(c *gin.Context) {
		name := strings.TrimPrefix(c.Request.URL.Path, prefix)
		if name == "" || strings.HasSuffix(name, "/") {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		if info, err := fs.Stat(assets, strings.TrimPrefix(path.Clean(name), "/")); err != nil || info.IsDir() {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		c.Request.URL.Path = name
		c.Header("Cache-Control", "public, max-age=3600") // browser caches an hour
		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}
