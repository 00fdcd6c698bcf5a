// Ego: a privacy-focused personality self-assessment service.
// Everything lives in process memory by default; the vector store is
// initialized for the future chat-with-past-self feature and stays
// inert unless recording is explicitly enabled.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/egolabs/ego/config"
	"github.com/egolabs/ego/engine"
	"github.com/egolabs/ego/gateway"
	"github.com/egolabs/ego/memory"
	"github.com/egolabs/ego/memory/embedder/mock"
	"github.com/egolabs/ego/memory/store/chromem"
	"github.com/egolabs/ego/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// ============================================================
	// MEMORY SYSTEM SETUP
	// ============================================================
	log.Printf("📦 Initializing vector store (collection %q, model %q)...",
		cfg.Collection, cfg.EmbeddingModel)

	var store *chromem.Store
	if cfg.Persist {
		store, err = chromem.NewPersistent(cfg.Collection, cfg.PersistDir)
	} else {
		store, err = chromem.New(cfg.Collection)
	}
	if err != nil {
		log.Fatalf("❌ Failed to initialize vector store: %v", err)
	}
	defer store.Close()

	memConfig := *memory.DefaultConfig
	memConfig.Enabled = cfg.MemoryEnabled
	manager := memory.NewSimpleManager(store, mock.New(), &memConfig)
	if cfg.MemoryEnabled {
		log.Println("✅ Snapshot recording enabled")
	} else {
		log.Println("✅ Vector store ready (recording disabled)")
	}

	// ============================================================
	// SESSIONS AND DISPATCH
	// ============================================================
	sessions, err := session.NewRegistry(cfg.SessionTTL)
	if err != nil {
		log.Fatalf("❌ Failed to create session registry: %v", err)
	}
	defer sessions.Close()

	eng := engine.New(engine.WithMemory(manager))

	// ============================================================
	// GATEWAY
	// ============================================================
	srv := gateway.NewServer(cfg.Addr(), eng, sessions)
	if err := srv.Start(); err != nil {
		log.Fatalf("❌ Failed to start gateway: %v", err)
	}
	log.Printf("✅ Ego ready at http://%s", cfg.Addr())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		log.Printf("Gateway shutdown error: %v", err)
	}
}
