package config

import (
	"testing"

	"github.com/curiolabs/curio/internal/market"
)

func TestServerConfigFinalizeDefaults(t *testing.T) {
	cfg := &ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Addr())
	}
	if cfg.ReadTimeout != "1m" {
		t.Errorf("ReadTimeout = %q, want 1m", cfg.ReadTimeout)
	}
	if cfg.ShutdownTimeoutDuration().Seconds() != 30 {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 30s", cfg.ShutdownTimeoutDuration())
	}
}

func TestServerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServerConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  ServerConfig{Port: 8080},
		},
		{
			name:    "port out of range",
			cfg:     ServerConfig{Port: 70000},
			wantErr: true,
		},
		{
			name:    "bad read timeout",
			cfg:     ServerConfig{Port: 8080, ReadTimeout: "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize()
			if (err != nil) != tt.wantErr {
				t.Errorf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAPIConfigMaxUploadSize(t *testing.T) {
	cfg := &APIConfig{MaxUploadSize: "10MB"}
	if got := cfg.MaxUploadSizeBytes(); got != 10*1024*1024 {
		t.Errorf("MaxUploadSizeBytes() = %d, want %d", got, 10*1024*1024)
	}

	// Unparseable sizes fall back to 50MB rather than failing the request path.
	cfg = &APIConfig{MaxUploadSize: "huge"}
	if got := cfg.MaxUploadSizeBytes(); got != 50*1024*1024 {
		t.Errorf("MaxUploadSizeBytes() fallback = %d, want %d", got, 50*1024*1024)
	}
}

func TestConfigMerge(t *testing.T) {
	base := &Config{
		Server:          ServerConfig{Host: "0.0.0.0", Port: 8080},
		ShutdownTimeout: "30s",
		Version:         "0.1.0",
	}

	overlay := &Config{
		Server: ServerConfig{Port: 9090},
		Market: market.Config{
			Sources: []market.Source{
				{Name: "auctionhouse", BaseURL: "https://auctions.example.com"},
			},
		},
		Version: "0.2.0",
	}

	base.Merge(overlay)

	if base.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want base value retained", base.Server.Host)
	}
	if base.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want overlay value 9090", base.Server.Port)
	}
	if base.Version != "0.2.0" {
		t.Errorf("Version = %q, want 0.2.0", base.Version)
	}
	if len(base.Market.Sources) != 1 || base.Market.Sources[0].Name != "auctionhouse" {
		t.Errorf("Market.Sources = %+v, want overlay sources", base.Market.Sources)
	}
}
