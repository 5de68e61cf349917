package handlers

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// defaultShell is served when no built client is configured.
const defaultShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Professionals</title>
</head>
<body>
<div id="app"></div>
</body>
</html>
`

// SPAHandler answers every unmatched GET with the client application shell.
type SPAHandler struct {
	shell []byte
}

// NewSPAHandler loads indexPath once. An empty or unreadable path falls back
// to the built-in shell.
func NewSPAHandler(indexPath string) *SPAHandler {
	h := &SPAHandler{shell: []byte(defaultShell)}
	if indexPath == "" {
		return h
	}
	data, err := os.ReadFile(indexPath)
	if err != nil {
		log.Printf("SPA: could not read %s, serving the built-in shell: %v", indexPath, err)
		return h
	}
	h.shell = data
	return h
}

// NoRoute is installed as the engine's fallback handler.
func (h *SPAHandler) NoRoute(c *gin.Context) {
	path := c.Request.URL.Path
	if path == "/api" || strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.shell)
}
