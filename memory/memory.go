package memory

import (
	"context"
	"time"

	"github.com/egolabs/ego/profile"
)

// Memory is the core interface for stored entries. The package ships one
// implementation, Snapshot (a saved assessment result); free-form
// reflection entries are an expected future implementation.
//
// Each memory type controls its own content structure, metadata schema,
// and formatting for prompt injection.
type Memory interface {
	// Identity and ownership.
	ID() string
	OwnerID() string // Session or user ID owning this memory.
	Type() string    // Memory type identifier (e.g. "snapshot").

	// Content and metadata.
	Text() string                     // Canonical text form, used for embedding.
	Metadata() map[string]interface{} // Flexible metadata for custom fields.

	CreatedAt() time.Time

	// Format renders this memory for prompt injection.
	Format(ctx FormatContext) string

	Embedding() []float32
	SetEmbedding([]float32)
}

// FormatContext provides context for memory formatting: implementations
// can truncate to MaxLength or emphasize query-relevant parts.
type FormatContext struct {
	OwnerID   string
	Query     string
	MaxLength int
}

// Match pairs a retrieved memory with its similarity to the query,
// in [0,1] with higher meaning closer.
type Match struct {
	Memory     Memory
	Similarity float32
}

// Store is the vector storage backend interface.
// Implementations: chromem store (local), pgvector (production).
type Store interface {
	// Store saves a memory with its embedding. The embedding must be
	// set before calling Store.
	Store(ctx context.Context, mem Memory) error

	// Query retrieves an owner's memories by vector similarity, sorted
	// by similarity (highest first).
	Query(ctx context.Context, ownerID string, embedding []float32, limit int) ([]Match, error)

	// Close releases resources.
	Close() error
}

// Embedder converts text to vector embeddings.
// Implementations: mock (deterministic, default for local use and
// tests), ONNX with all-MiniLM-L6-v2 (behind the onnx build tag).
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size.
	Dimensions() int
}

// Manager orchestrates memory operations. The application decides WHEN
// memory is touched (record after an assessment save); the Manager
// decides HOW: what to store, what to retrieve, how to format it.
type Manager interface {
	// RecordResult stores an assessment result as a snapshot memory.
	// Called after a successful profile save when recording is enabled.
	RecordResult(ctx context.Context, ownerID string, result profile.Result) error

	// Retrieve finds memories relevant to a query and returns them as a
	// formatted string ready for prompt injection. The placeholder chat
	// view does not call this; it exists for the retrieval feature the
	// store handle anticipates.
	Retrieve(ctx context.Context, ownerID string, query string) (string, error)
}
