package memory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/egolabs/ego/memory"
	"github.com/egolabs/ego/memory/embedder/mock"
	"github.com/egolabs/ego/memory/store/chromem"
	"github.com/egolabs/ego/profile"
)

func newTestManager(t *testing.T, enabled bool) *memory.SimpleManager {
	t.Helper()

	store, err := chromem.New("")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	config := &memory.Config{
		Enabled:       enabled,
		MinSimilarity: 0.5,
		MaxResults:    10,
	}
	return memory.NewSimpleManager(store, mock.New(), config)
}

func TestSimpleManager_RecordAndRetrieve(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t, true)

	result := profile.NewBigFiveResult(80, 40, 60, 70, 30)
	if err := manager.RecordResult(ctx, "session1", result); err != nil {
		t.Fatalf("Failed to record result: %v", err)
	}

	// The mock embedder has no semantics, but identical text embeds
	// identically, so querying with the snapshot's own text is an
	// exact match.
	query := memory.NewSnapshot("session1", result).Text()
	formatted, err := manager.Retrieve(ctx, "session1", query)
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}
	if formatted == "" {
		t.Fatal("Expected a formatted memory block")
	}
	if !strings.Contains(formatted, "PAST SELF CONTEXT") {
		t.Errorf("Formatted block lost its header: %q", formatted)
	}
	if !strings.Contains(formatted, "Big Five: O=80") {
		t.Errorf("Formatted block lost the snapshot summary: %q", formatted)
	}
}

func TestSimpleManager_DisabledIsInert(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t, false)

	result := profile.NewBigFiveResult(50, 50, 50, 50, 50)
	if err := manager.RecordResult(ctx, "session1", result); err != nil {
		t.Fatalf("Disabled RecordResult should be a no-op, got: %v", err)
	}

	formatted, err := manager.Retrieve(ctx, "session1", "anything")
	if err != nil {
		t.Fatalf("Disabled Retrieve should be a no-op, got: %v", err)
	}
	if formatted != "" {
		t.Errorf("Disabled Retrieve returned content: %q", formatted)
	}
}

func TestSimpleManager_OwnerNamespacing(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t, true)

	mine := profile.NewBigFiveResult(90, 10, 90, 10, 90)
	theirs, err := profile.NewEnneagramResult(3, 4, profile.InstinctSocial)
	if err != nil {
		t.Fatalf("Failed to build enneagram result: %v", err)
	}

	if err := manager.RecordResult(ctx, "owner-a", mine); err != nil {
		t.Fatalf("Failed to record for owner-a: %v", err)
	}
	if err := manager.RecordResult(ctx, "owner-b", theirs); err != nil {
		t.Fatalf("Failed to record for owner-b: %v", err)
	}

	// owner-b queries with owner-a's exact text: the match exists in
	// the collection but belongs to another owner, so nothing returns.
	query := memory.NewSnapshot("owner-a", mine).Text()
	formatted, err := manager.Retrieve(ctx, "owner-b", query)
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}
	if strings.Contains(formatted, "Big Five") {
		t.Errorf("owner-b retrieved owner-a's snapshot: %q", formatted)
	}
}

func TestSimpleManager_SimilarityFloor(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t, true)

	result, err := profile.NewMBTIResult('I', 'N', 'F', 'P')
	if err != nil {
		t.Fatalf("Failed to build MBTI result: %v", err)
	}
	if err := manager.RecordResult(ctx, "session1", result); err != nil {
		t.Fatalf("Failed to record result: %v", err)
	}

	// Unrelated text hashes to an unrelated vector, far below the 0.5
	// similarity floor.
	formatted, err := manager.Retrieve(ctx, "session1", "completely unrelated query text")
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}
	if formatted != "" {
		t.Errorf("Expected nothing above the similarity floor, got: %q", formatted)
	}
}

func TestSnapshot_TextAndFormat(t *testing.T) {
	result, err := profile.NewEnneagramResult(4, 5, profile.InstinctSexual)
	if err != nil {
		t.Fatalf("Failed to build enneagram result: %v", err)
	}
	snap := memory.NewSnapshot("owner", result)

	if snap.Type() != "snapshot" {
		t.Errorf("Unexpected memory type: %q", snap.Type())
	}
	if snap.OwnerID() != "owner" {
		t.Errorf("Unexpected owner: %q", snap.OwnerID())
	}
	if !strings.Contains(snap.Text(), "Type 4w5 (One-to-One/Sexual (sx))") {
		t.Errorf("Unexpected text form: %q", snap.Text())
	}

	formatted := snap.Format(memory.FormatContext{MaxLength: 12})
	if len(formatted) > 12 {
		t.Errorf("Format ignored MaxLength: %q", formatted)
	}
}
