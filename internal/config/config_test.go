package config

import (
	"strings"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Web == nil {
		t.Fatal("default config has no web section")
	}
	if cfg.Web.ListenHost != "0.0.0.0" {
		t.Errorf("ListenHost = %q, want 0.0.0.0", cfg.Web.ListenHost)
	}
	if cfg.Web.ListenPort != 5000 {
		t.Errorf("ListenPort = %d, want 5000", cfg.Web.ListenPort)
	}
	if !cfg.Web.Debug {
		t.Error("debug mode should be enabled by default")
	}
	if cfg.Web.SSL {
		t.Error("SSL should be disabled by default")
	}
	if err := cfg.Web.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestWebConfigAddr(t *testing.T) {
	testCases := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 5000, "0.0.0.0:5000"},
		{"", 8080, ":8080"},
		{"::1", 5000, "[::1]:5000"},
	}

	for _, tc := range testCases {
		wc := &WebConfig{ListenHost: tc.host, ListenPort: tc.port}
		if got := wc.Addr(); got != tc.want {
			t.Errorf("Addr(%q, %d) = %q, want %q", tc.host, tc.port, got, tc.want)
		}
	}
}

func TestWebConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     *WebConfig
		wantErr string
	}{
		{"nil", nil, "nil"},
		{"zero port", &WebConfig{ListenPort: 0}, "invalid port"},
		{"port too high", &WebConfig{ListenPort: 70000}, "invalid port"},
		{"ssl without cert", &WebConfig{ListenPort: 443, SSL: true, KeyFile: "k.pem"}, "cert_file"},
		{"ssl without key", &WebConfig{ListenPort: 443, SSL: true, CertFile: "c.pem"}, "cert_file"},
		{"ssl ok", &WebConfig{ListenPort: 443, SSL: true, CertFile: "c.pem", KeyFile: "k.pem"}, ""},
		{"plain ok", &WebConfig{ListenPort: 5000}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}
