// Package web provides the HTTP server and web interface for go-noisedetox
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-noisedetox/internal/config"
)

const (
	baseTemplate  = "base.html"
	errorTemplate = "error"
)

// loadTemplates parses base.html together with every page template and the error page.
// A page whose template is missing or broken fails the whole load.
func loadTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	names := make([]string, 0, len(pages)+1)
	for _, p := range pages {
		names = append(names, p.Template)
	}
	names = append(names, errorTemplate)

	templates := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.ParseFS(fsys, "templates/"+baseTemplate, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}

// getBaseTemplateData creates the TemplateData for a page
func (s *WebServer) getBaseTemplateData(p Page) TemplateData {
	nav := make([]NavItem, 0, len(pages))
	for _, np := range pages {
		nav = append(nav, NavItem{Path: np.Path, Label: np.Title, Active: np.Path == p.Path})
	}
	return TemplateData{
		Title:      p.Title,
		Path:       p.Path,
		AppVersion: config.AppVersion,
		Nav:        nav,
	}
}

// renderTemplate renders a template with base template data.
// Output is buffered so a failing template never leaks a partial 200.
func (s *WebServer) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		s.renderError(c, http.StatusInternalServerError, "Template error", "no such template: "+templateName)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, baseTemplate, data); err != nil {
		log.Printf("[WEB]: Error rendering template %s: %v", templateName, err)
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// renderError renders an error page
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	log.Printf("[ERROR]:internal/web: Error %d: %s - %s", statusCode, message, errstring)

	errorData := ErrorPageData{
		TemplateData: s.getBaseTemplateData(Page{Title: "Ошибка"}),
		Error:        message,
		StatusCode:   statusCode,
	}

	tmpl, ok := s.templates[errorTemplate]
	if !ok {
		c.String(statusCode, "Error: %s - %s", message, errstring)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, baseTemplate, errorData); err != nil {
		log.Printf("[WEB]: Error rendering error template: %v", err)
		c.String(statusCode, "Error: %s - %s", message, errstring)
		return
	}
	c.Data(statusCode, "text/html; charset=utf-8", buf.Bytes())
}
