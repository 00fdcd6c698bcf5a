package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host 127.0.0.1, got %q", cfg.Host)
	}
	if cfg.Port != 8780 {
		t.Errorf("Expected default port 8780, got %d", cfg.Port)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("Expected default TTL 30m, got %v", cfg.SessionTTL)
	}
	if cfg.MemoryEnabled {
		t.Error("Memory recording should default to off")
	}
	if !cfg.Persist {
		t.Error("Vector store persistence should default to on")
	}
	if cfg.PersistDir != "./chroma_db" {
		t.Errorf("Expected default persist dir ./chroma_db, got %q", cfg.PersistDir)
	}
	if cfg.Collection != "ego_personality" {
		t.Errorf("Expected default collection ego_personality, got %q", cfg.Collection)
	}
	if cfg.Addr() != "127.0.0.1:8780" {
		t.Errorf("Unexpected addr: %q", cfg.Addr())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EGO_HOST", "0.0.0.0")
	t.Setenv("EGO_PORT", "9000")
	t.Setenv("EGO_SESSION_TTL", "2h")
	t.Setenv("EGO_MEMORY_ENABLED", "true")
	t.Setenv("EGO_PERSIST", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:9000" {
		t.Errorf("Unexpected addr: %q", cfg.Addr())
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("Expected TTL 2h, got %v", cfg.SessionTTL)
	}
	if !cfg.MemoryEnabled {
		t.Error("Expected memory recording on")
	}
	if cfg.Persist {
		t.Error("Expected an in-memory vector store")
	}
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("EGO_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("Expected an error for a non-numeric port")
	}
}
