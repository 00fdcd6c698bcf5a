// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings. Every field has a working default;
// a bare `ego` binary serves on localhost with an in-process, inert
// memory store.
type Config struct {
	Host string `env:"EGO_HOST" envDefault:"127.0.0.1"`
	Port int    `env:"EGO_PORT" envDefault:"8780"`

	// SessionTTL is how long an idle session survives before its
	// profile is discarded.
	SessionTTL time.Duration `env:"EGO_SESSION_TTL" envDefault:"30m"`

	// MemoryEnabled opts in to recording assessment snapshots in the
	// vector store. Off by default: the store handle is constructed and
	// otherwise ignored.
	MemoryEnabled bool `env:"EGO_MEMORY_ENABLED" envDefault:"false"`

	// Persist toggles on-disk storage for the vector database. Off
	// keeps the store purely in memory.
	Persist bool `env:"EGO_PERSIST" envDefault:"true"`

	// PersistDir is the on-disk location of the vector database when
	// persistence is on.
	PersistDir string `env:"EGO_PERSIST_DIR" envDefault:"./chroma_db"`

	// Collection is the vector store collection name.
	Collection string `env:"EGO_COLLECTION" envDefault:"ego_personality"`

	// EmbeddingModel names the sentence-transformer the collection is
	// built around. The default mock embedder only matches its
	// dimensions; the onnx build uses the model itself.
	EmbeddingModel string `env:"EGO_EMBEDDING_MODEL" envDefault:"all-MiniLM-L6-v2"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Addr returns the host:port the gateway listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
