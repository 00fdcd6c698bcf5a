package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/egolabs/ego/profile"
)

// Snapshot stores one saved assessment result as a memory. It is the
// package-provided Memory implementation: the record an assessment save
// leaves behind so a future chat can answer "what was I like then".
type Snapshot struct {
	id        string
	ownerID   string
	createdAt time.Time
	embedding []float32
	metadata  map[string]interface{}

	// Snapshot-specific fields.
	AssessmentKind profile.Kind
	Summary        string
}

// NewSnapshot creates a Snapshot from an assessment result.
func NewSnapshot(ownerID string, result profile.Result) *Snapshot {
	return &Snapshot{
		id:        uuid.New().String(),
		ownerID:   ownerID,
		createdAt: time.Now(),
		metadata: map[string]interface{}{
			"kind": string(result.Kind()),
		},
		AssessmentKind: result.Kind(),
		Summary:        result.Summary(),
	}
}

// NewSnapshotFromStorage rebuilds a Snapshot from stored data. Store
// implementations use this when deserializing query results.
func NewSnapshotFromStorage(
	id string,
	ownerID string,
	createdAt time.Time,
	embedding []float32,
	kind profile.Kind,
	summary string,
	metadata map[string]interface{},
) *Snapshot {
	return &Snapshot{
		id:             id,
		ownerID:        ownerID,
		createdAt:      createdAt,
		embedding:      embedding,
		metadata:       metadata,
		AssessmentKind: kind,
		Summary:        summary,
	}
}

func (s *Snapshot) ID() string      { return s.id }
func (s *Snapshot) OwnerID() string { return s.ownerID }
func (s *Snapshot) Type() string    { return "snapshot" }

// Text returns the canonical text form used for embedding.
func (s *Snapshot) Text() string {
	return fmt.Sprintf("Personality assessment (%s): %s", s.AssessmentKind, s.Summary)
}

func (s *Snapshot) Metadata() map[string]interface{} { return s.metadata }
func (s *Snapshot) CreatedAt() time.Time             { return s.createdAt }
func (s *Snapshot) Embedding() []float32             { return s.embedding }
func (s *Snapshot) SetEmbedding(emb []float32)       { s.embedding = emb }

// Format renders the snapshot for prompt injection: the summary plus
// when it was taken, truncated to fit the allotted space.
func (s *Snapshot) Format(ctx FormatContext) string {
	line := fmt.Sprintf("[%s] %s", s.createdAt.Format("2006-01-02"), s.Summary)
	if ctx.MaxLength > 0 && len(line) > ctx.MaxLength {
		line = line[:ctx.MaxLength]
	}
	return line
}
