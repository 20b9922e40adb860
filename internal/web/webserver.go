// Package web provides the HTTP server and web interface for go-noisedetox
package web

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-noisedetox/internal/config"
)

// WebServer represents the web server
type WebServer struct {
	Router     *gin.Engine
	Config     *config.WebConfig
	templates  map[string]*template.Template
	httpServer *http.Server
}

// TemplateData represents common template data.
// Only values fixed at startup go in here so a page renders the same bytes every time.
type TemplateData struct {
	Title      string
	Path       string
	AppVersion string
	Nav        []NavItem
}

// NavItem is one entry of the navigation bar in base.html
type NavItem struct {
	Path   string
	Label  string
	Active bool
}

// ErrorPageData represents data for the error page
type ErrorPageData struct {
	TemplateData
	Error      string
	StatusCode int
}
