package web

import (
	"github.com/gin-gonic/gin"
)

// Page maps a fixed URL path to the template rendered for it
type Page struct {
	Path     string
	Template string
	Title    string
}

// pages is the route table. Built at compile time, never mutated.
var pages = []Page{
	{Path: "/", Template: "index", Title: "Главная"},
	{Path: "/diary", Template: "diary", Title: "Дневник шума"},
	{Path: "/hearing-test", Template: "hearing_test", Title: "Проверка слуха"},
	{Path: "/results", Template: "results", Title: "Результаты"},
	{Path: "/protection", Template: "protection", Title: "Защита от шума"},
	{Path: "/about", Template: "about", Title: "О проекте"},
}

// Pages returns a copy of the route table
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// pageHandler renders the page's template with no request input
func (s *WebServer) pageHandler(p Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.renderTemplate(c, p.Template, s.getBaseTemplateData(p))
	}
}
