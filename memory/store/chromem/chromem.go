// Package chromem wraps chromem-go, a pure Go embedded vector database,
// as a memory.Store backend.
package chromem

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/egolabs/ego/memory"
	"github.com/egolabs/ego/profile"
)

// DefaultCollection is the collection every snapshot lives in; owners
// are separated through document metadata rather than per-owner
// collections, so one persisted database holds every session.
const DefaultCollection = "ego_personality"

// Store keeps memories in a single chromem collection.
type Store struct {
	db         *chromem.DB
	collection *chromem.Collection
	mu         sync.Mutex
}

// New creates an in-memory store using the named collection.
// An empty name uses DefaultCollection.
func New(collection string) (*Store, error) {
	return newStore(chromem.NewDB(), collection)
}

// NewPersistent creates a store backed by an on-disk chromem database
// at dir, so snapshots survive process restarts.
func NewPersistent(collection, dir string) (*Store, error) {
	db, err := chromem.NewPersistentDB(dir, false)
	if err != nil {
		return nil, fmt.Errorf("open persistent db: %w", err)
	}
	return newStore(db, collection)
}

func newStore(db *chromem.DB, collection string) (*Store, error) {
	if collection == "" {
		collection = DefaultCollection
	}
	// Embeddings are provided by the caller, so no embedding func here.
	col, err := db.GetOrCreateCollection(collection, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get or create collection: %w", err)
	}
	return &Store{db: db, collection: col}, nil
}

// Store saves a memory with its embedding.
func (s *Store) Store(ctx context.Context, mem memory.Memory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	metadata := map[string]string{
		"type":       mem.Type(),
		"owner_id":   mem.OwnerID(),
		"created_at": mem.CreatedAt().Format(time.RFC3339),
	}
	for k, v := range mem.Metadata() {
		if str, ok := v.(string); ok {
			metadata[k] = str
		} else {
			metadata[k] = fmt.Sprintf("%v", v)
		}
	}

	doc := chromem.Document{
		ID:        mem.ID(),
		Content:   mem.Text(),
		Embedding: mem.Embedding(),
		Metadata:  metadata,
	}

	if err := s.collection.AddDocument(ctx, doc); err != nil {
		return fmt.Errorf("add document: %w", err)
	}

	log.Printf("[CHROMEM] Stored memory: id=%s owner=%s type=%s", mem.ID(), mem.OwnerID(), mem.Type())
	return nil
}

// Query retrieves an owner's memories by vector similarity.
func (s *Store) Query(ctx context.Context, ownerID string, embedding []float32, limit int) ([]memory.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	where := map[string]string{"owner_id": ownerID}

	// chromem requires nResults <= collection size; shrink the limit
	// until the query fits, treating an empty collection as no matches.
	var results []chromem.Result
	for currentLimit := limit; currentLimit >= 1; currentLimit-- {
		var err error
		results, err = s.collection.QueryEmbedding(ctx, embedding, currentLimit, where, nil)
		if err == nil {
			break
		}
		if isInsufficientDocsError(err) {
			if currentLimit == 1 {
				return nil, nil
			}
			continue
		}
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	matches := make([]memory.Match, 0, len(results))
	for i, result := range results {
		mem, err := deserialize(result)
		if err != nil {
			log.Printf("[CHROMEM] Skipping result #%d: %v", i+1, err)
			continue
		}
		matches = append(matches, memory.Match{Memory: mem, Similarity: result.Similarity})
	}
	return matches, nil
}

// Close releases resources. The in-memory variant has nothing to
// release; the persistent variant flushes on every write already.
func (s *Store) Close() error {
	return nil
}

// deserialize converts a chromem result back to a Memory.
func deserialize(result chromem.Result) (memory.Memory, error) {
	switch result.Metadata["type"] {
	case "snapshot":
		return deserializeSnapshot(result), nil
	default:
		return nil, fmt.Errorf("unknown memory type: %s", result.Metadata["type"])
	}
}

func deserializeSnapshot(result chromem.Result) *memory.Snapshot {
	createdAt, _ := time.Parse(time.RFC3339, result.Metadata["created_at"])

	metadata := make(map[string]interface{})
	for k, v := range result.Metadata {
		switch k {
		case "type", "owner_id", "created_at":
		default:
			metadata[k] = v
		}
	}

	kind := profile.Kind(result.Metadata["kind"])

	// Text form is "Personality assessment (<kind>): <summary>"; strip
	// the prefix to recover the summary.
	summary := result.Content
	if i := strings.Index(summary, "): "); i >= 0 {
		summary = summary[i+len("): "):]
	}

	return memory.NewSnapshotFromStorage(
		result.ID,
		result.Metadata["owner_id"],
		createdAt,
		result.Embedding,
		kind,
		summary,
		metadata,
	)
}

// isInsufficientDocsError reports whether err means the collection holds
// fewer documents than the requested result count.
func isInsufficientDocsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "nResults must be") || strings.Contains(msg, "number of documents")
}
