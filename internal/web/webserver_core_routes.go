// Package web provides the HTTP server and web interface for go-noisedetox
package web

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/go-while/go-noisedetox/internal/config"
)

// NewServer creates a new web server instance with the embedded templates
func NewServer(webconfig *config.WebConfig) (*WebServer, error) {
	return newServer(webconfig, EmbeddedTemplatesFS)
}

func newServer(webconfig *config.WebConfig, templatesFS fs.FS) (*WebServer, error) {
	if err := webconfig.Validate(); err != nil {
		return nil, err
	}

	if webconfig.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	templates, err := loadTemplates(templatesFS)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	router := gin.New()
	router.Use(ApacheLogFormat(), gin.Recovery())
	router.HandleMethodNotAllowed = true
	// Only the exact table paths exist; /about/ is a 404, not a redirect
	router.RedirectTrailingSlash = false

	// Configure Gin to trust reverse proxy headers
	// Set trusted proxies for common reverse proxy setups (nginx, etc.)
	if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy like nginx with SSL)
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	router.Use(secure.New(secureConfig))

	server := &WebServer{
		Router:    router,
		Config:    webconfig,
		templates: templates,
	}
	server.httpServer = &http.Server{
		Addr:              webconfig.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	staticFS, err := fs.Sub(EmbeddedStaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("embedded static filesystem: %w", err)
	}
	if webconfig.Debug {
		if assets, err := ListAssets(staticFS); err == nil {
			log.Printf("[WEB]: Embedded static files: %v", assets)
		}
	}

	server.setupRoutes(staticFS)
	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes(staticFS fs.FS) {
	// Static files first (highest priority)
	s.Router.GET("/static/*filepath", StaticHandler(staticFS, "/static"))

	for _, p := range pages {
		s.Router.GET(p.Path, s.pageHandler(p))
		s.Router.HEAD(p.Path, s.pageHandler(p))
	}
}

// Start binds the configured address and serves until Shutdown.
// It returns http.ErrServerClosed after a graceful stop.
func (s *WebServer) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln, with TLS if configured
func (s *WebServer) Serve(ln net.Listener) error {
	if s.Config.SSL {
		log.Printf("[WEB]: Starting HTTPS server on %s", ln.Addr())
		return s.httpServer.ServeTLS(ln, s.Config.CertFile, s.Config.KeyFile)
	}
	log.Printf("[WEB]: Starting HTTP server on %s", ln.Addr())
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the web server, waiting for in-flight requests until ctx expires
func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ApacheLogFormat logs every request in Apache combined log format
func ApacheLogFormat() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
			param.ClientIP,
			param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.BodySize,
			param.Request.Referer(),
			param.Request.UserAgent(),
		)
	})
}
