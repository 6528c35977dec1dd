package app

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	apihttp "github.com/lumen-studio/recruit-intake/internal/http"
	"github.com/lumen-studio/recruit-intake/internal/http/api/admin"
	"github.com/lumen-studio/recruit-intake/internal/http/api/front"
	"github.com/lumen-studio/recruit-intake/internal/security"
	"github.com/lumen-studio/recruit-intake/internal/webui"
	"gorm.io/gorm"
)

// NewRouter assembles the API routes and the embedded web UI.
func NewRouter(conn *gorm.DB, tokens *security.TokenService, webBundle webui.Bundle) *gin.Engine {
	engine := gin.New()
	engine.Use(
		apihttp.RequestLogMiddleware(),
		apihttp.RecoveryMiddleware(),
		webUIRootMiddleware(webBundle.IndexHTML),
	)

	admin.RegisterAdminRoutes(engine, conn, tokens)
	front.RegisterFrontRoutes(engine, conn)
	engine.StaticFS("/assets", webBundle.AssetsFS)
	engine.NoRoute(spaFallback(webBundle))
	return engine
}

// webUIRootMiddleware serves the index HTML at the root path.
func webUIRootMiddleware(indexHTML []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			return
		}
		if c.Request.URL.Path != "/" {
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
		c.Abort()
	}
}

// spaFallback serves dist files, then index.html for client-side routes.
// Unknown API paths and missing assets get a plain 404.
func spaFallback(webBundle webui.Bundle) gin.HandlerFunc {
	fileServer := http.FileServer(http.FS(webBundle.DistFS))
	return func(c *gin.Context) {
		requestPath := c.Request.URL.Path
		if isAPIRoute(requestPath) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		cleanedPath := path.Clean("/" + requestPath)
		filePath := strings.TrimPrefix(cleanedPath, "/")
		if filePath != "" {
			fileInfo, errStat := fs.Stat(webBundle.DistFS, filePath)
			if errStat == nil && !fileInfo.IsDir() {
				fileServer.ServeHTTP(c.Writer, c.Request)
				return
			}
			if strings.Contains(path.Base(filePath), ".") {
				c.Status(http.StatusNotFound)
				return
			}
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", webBundle.IndexHTML)
	}
}

// isAPIRoute reports whether a path targets API endpoints.
func isAPIRoute(requestPath string) bool {
	for _, prefix := range []string{"/api", "/healthz"} {
		if requestPath == prefix || strings.HasPrefix(requestPath, prefix+"/") {
			return true
		}
	}
	return false
}
