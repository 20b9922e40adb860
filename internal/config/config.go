// Package config provides configuration management for go-noisedetox.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

var AppVersion = "-unset-" // will be set at build time

const (
	// Default listener settings
	DefaultListenHost = "0.0.0.0"
	DefaultListenPort = 5000

	// Graceful shutdown budget for in-flight requests
	DefaultShutdownTimeout = 10 * time.Second
)

// MainConfig holds the main configuration for go-noisedetox
type MainConfig struct {
	Web *WebConfig
}

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenHost      string
	ListenPort      int
	SSL             bool
	CertFile        string
	KeyFile         string
	Debug           bool // gin debug mode and route dump on startup
	ShutdownTimeout time.Duration
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *MainConfig {
	return &MainConfig{
		Web: &WebConfig{
			ListenHost:      DefaultListenHost,
			ListenPort:      DefaultListenPort,
			SSL:             false,
			Debug:           true,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

// Addr returns the host:port the web server binds to
func (wc *WebConfig) Addr() string {
	return net.JoinHostPort(wc.ListenHost, strconv.Itoa(wc.ListenPort))
}

// Validate checks the web configuration before the server is started
func (wc *WebConfig) Validate() error {
	if wc == nil {
		return errors.New("web config is nil")
	}
	if wc.ListenPort < 1 || wc.ListenPort > 65535 {
		return fmt.Errorf("invalid port number: %d (must be between 1 and 65535)", wc.ListenPort)
	}
	if wc.SSL && (wc.CertFile == "" || wc.KeyFile == "") {
		return errors.New("SSL enabled but cert_file or key_file not specified in config")
	}
	return nil
}
