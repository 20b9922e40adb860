// Web server for go-noisedetox
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	prof "github.com/go-while/go-cpu-mem-profiler"
	"github.com/go-while/go-noisedetox/internal/config"
	"github.com/go-while/go-noisedetox/internal/web"
)

var Prof *prof.Profiler

var (
	// command-line flags
	webhost     string
	webport     int
	webssl      bool
	webcertFile string
	webkeyFile  string
	debug       bool
	pprofAddr   string
)

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion

	flag.StringVar(&webhost, "webhost", "", "Web server listen address (default: 0.0.0.0)")
	flag.IntVar(&webport, "webport", 0, "Web server port (default: 5000)")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.BoolVar(&debug, "debug", true, "Run gin in debug mode")
	flag.StringVar(&pprofAddr, "pprof", "", "Start pprof web UI and memory profiling on this address (e.g. :51111)")
	flag.Parse()

	mainConfig := config.NewDefaultConfig()
	log.Printf("Starting go-noisedetox: Web Server (version: %s)", appVersion)

	if pprofAddr != "" {
		Prof = prof.NewProf()
		go Prof.PprofWeb(pprofAddr)
		Prof.StartMemProfile(5*time.Minute, 30*time.Second)
		log.Printf("[WEB]: pprof web UI listening on %s", pprofAddr)
	}

	webConfig := mainConfig.Web

	// Override config with command-line flags if provided
	if webhost != "" {
		webConfig.ListenHost = webhost
		log.Printf("[WEB]: Overriding listen host with command-line flag: %s", webConfig.ListenHost)
	}
	if webport > 0 {
		webConfig.ListenPort = webport
		log.Printf("[WEB]: Overriding listen port with command-line flag: %d", webConfig.ListenPort)
	} else {
		log.Printf("[WEB]: No port flag provided, using default: %d", webConfig.ListenPort)
	}
	if webssl {
		webConfig.SSL = true
		log.Printf("[WEB]: SSL enabled via command-line flag")
	}
	if webcertFile != "" {
		webConfig.CertFile = webcertFile
		log.Printf("[WEB]: SSL cert file set: %s", webConfig.CertFile)
	}
	if webkeyFile != "" {
		webConfig.KeyFile = webkeyFile
		log.Printf("[WEB]: SSL key file set: %s", webConfig.KeyFile)
	}
	webConfig.Debug = debug
	log.Printf("[WEB]: Using WEB configuration: %#v", webConfig)

	server, err := web.NewServer(webConfig)
	if err != nil {
		log.Fatalf("[WEB]: Failed to initialize web server: %v", err)
	}

	protocol := "http"
	if webConfig.SSL {
		protocol = "https"
	}
	log.Printf("[WEB]: Starting go-noisedetox web server on %s://%s", protocol, webConfig.Addr())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start web server in goroutine to make it non-blocking
	webServerErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			webServerErrChan <- err
		}
	}()

	log.Printf("[WEB]: Server started successfully. Press Ctrl+C to gracefully shutdown...")

	select {
	case <-sigChan:
		log.Printf("[WEB]: Received shutdown signal, initiating graceful shutdown...")
	case err := <-webServerErrChan:
		log.Fatalf("[WEB]: Failed to start web server: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), webConfig.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[WEB]: Error during shutdown: %v", err)
	}

	log.Printf("[WEB]: Graceful shutdown completed")
} // end main
