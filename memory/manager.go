package memory

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/egolabs/ego/profile"
)

// SimpleManager is the package-provided Manager implementation: embed,
// store, retrieve by similarity, format. Suitable for the local
// application; a production manager could add fact extraction,
// contradiction resolution, or decay.
type SimpleManager struct {
	store    Store
	embedder Embedder
	config   *Config
}

// NewSimpleManager creates a SimpleManager. A nil config uses
// DefaultConfig.
func NewSimpleManager(store Store, embedder Embedder, config *Config) *SimpleManager {
	if config == nil {
		config = DefaultConfig
	}
	return &SimpleManager{
		store:    store,
		embedder: embedder,
		config:   config,
	}
}

// RecordResult stores an assessment result as a snapshot memory.
func (m *SimpleManager) RecordResult(ctx context.Context, ownerID string, result profile.Result) error {
	if !m.config.Enabled {
		return nil // Recording disabled; the store handle stays inert.
	}

	snap := NewSnapshot(ownerID, result)

	embedding, err := m.embedder.Embed(ctx, snap.Text())
	if err != nil {
		return fmt.Errorf("embed snapshot: %w", err)
	}
	snap.SetEmbedding(embedding)

	if err := m.store.Store(ctx, snap); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}

	log.Printf("[MEMORY] Recorded %s snapshot for owner %s", result.Kind(), ownerID)
	return nil
}

// Retrieve finds relevant memories and returns a formatted string.
func (m *SimpleManager) Retrieve(ctx context.Context, ownerID string, query string) (string, error) {
	if !m.config.Enabled {
		return "", nil
	}

	embedding, err := m.embedder.Embed(ctx, query)
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}

	matches, err := m.store.Query(ctx, ownerID, embedding, m.config.MaxResults)
	if err != nil {
		return "", fmt.Errorf("query store: %w", err)
	}

	// Drop matches below the similarity floor.
	kept := matches[:0]
	for _, match := range matches {
		if float64(match.Similarity) >= m.config.MinSimilarity {
			kept = append(kept, match)
		}
	}

	log.Printf("[MEMORY] Retrieved %d memories (%d above threshold) for query: %q",
		len(matches), len(kept), truncateLog(query, 50))
	if len(kept) == 0 {
		return "", nil
	}

	return m.formatMatches(kept, ownerID, query), nil
}

// formatMatches renders retrieved memories into a structured block.
func (m *SimpleManager) formatMatches(matches []Match, ownerID string, query string) string {
	parts := []string{"=== PAST SELF CONTEXT ===\n"}

	maxLengthPerMemory := 2000 / len(matches)
	if maxLengthPerMemory < 100 {
		maxLengthPerMemory = 100
	}

	for i, match := range matches {
		formatted := match.Memory.Format(FormatContext{
			OwnerID:   ownerID,
			Query:     query,
			MaxLength: maxLengthPerMemory,
		})
		parts = append(parts, fmt.Sprintf("%d. %s\n", i+1, formatted))
	}

	return strings.Join(parts, "\n")
}

// truncateLog truncates text for logging.
func truncateLog(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Config holds SimpleManager configuration.
type Config struct {
	// Enabled toggles recording and retrieval. Default: false — the
	// store handle is constructed at startup but never written to or
	// queried until explicitly enabled.
	Enabled bool

	// MinSimilarity is the minimum similarity for retrieval [0.0-1.0].
	// Tiny local models (all-MiniLM-L6-v2) score similar text around
	// 0.35; API-grade embedders score 0.7-0.85.
	MinSimilarity float64

	// MaxResults caps how many memories a single Retrieve returns.
	MaxResults int
}

// DefaultConfig holds sensible defaults for local use.
var DefaultConfig = &Config{
	Enabled:       false, // Opt-in.
	MinSimilarity: 0.3,
	MaxResults:    10,
}
