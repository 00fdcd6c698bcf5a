// Package session owns the per-user session context and its registry.
//
// A Session is the explicit state container the dispatch loop threads
// through every handler: no process-wide globals. It is created empty,
// mutated only by submit commands, and discarded when its registry entry
// expires.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"

	"github.com/egolabs/ego/profile"
)

// Session is one user's assessment context. The embedded mutex
// serializes events: each action is handled to completion before the
// next is accepted, so the Profile sees a single writer.
type Session struct {
	sync.Mutex

	ID        string
	CreatedAt time.Time
	Profile   *profile.Profile
}

// New creates a session with an empty profile.
func New() *Session {
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Profile:   profile.New(),
	}
}

// Registry tracks live sessions with TTL-based expiry. Expired sessions
// are evicted by the cache; their profiles go with them, matching the
// session-scoped lifecycle of all assessment data.
type Registry struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

const (
	// registryCounters sizes ristretto's frequency sketch; ~10x the
	// expected max live sessions.
	registryCounters = 10_000
	registryMaxCost  = 1_000
	registryBuffer   = 64
)

// NewRegistry creates a registry whose sessions expire after ttl of
// inactivity.
func NewRegistry(ttl time.Duration) (*Registry, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: registryCounters,
		MaxCost:     registryMaxCost,
		BufferItems: registryBuffer,
	})
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Registry{cache: cache, ttl: ttl}, nil
}

// Create starts a new session and registers it.
func (r *Registry) Create() *Session {
	sess := New()
	r.cache.SetWithTTL(sess.ID, sess, 1, r.ttl)
	// Set is async; wait so the session is visible to the next request.
	r.cache.Wait()
	return sess
}

// Get returns a live session and refreshes its TTL.
func (r *Registry) Get(id string) (*Session, bool) {
	v, ok := r.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*Session)
	if !ok {
		return nil, false
	}
	r.cache.SetWithTTL(id, sess, 1, r.ttl)
	return sess, true
}

// Delete ends a session immediately.
func (r *Registry) Delete(id string) {
	r.cache.Del(id)
	r.cache.Wait()
}

// Close releases the registry's cache resources.
func (r *Registry) Close() {
	r.cache.Close()
}
