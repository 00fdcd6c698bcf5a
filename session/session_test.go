package session_test

import (
	"testing"
	"time"

	"github.com/egolabs/ego/session"
)

func TestRegistry_CreateAndGet(t *testing.T) {
	reg, err := session.NewRegistry(time.Minute)
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	defer reg.Close()

	sess := reg.Create()
	if sess.ID == "" {
		t.Fatal("Expected a session ID")
	}
	if !sess.Profile.IsEmpty() {
		t.Error("New session should start with an empty profile")
	}

	got, ok := reg.Get(sess.ID)
	if !ok {
		t.Fatal("Expected to find the created session")
	}
	if got != sess {
		t.Error("Get returned a different session instance")
	}
}

func TestRegistry_UnknownID(t *testing.T) {
	reg, err := session.NewRegistry(time.Minute)
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	defer reg.Close()

	if _, ok := reg.Get("nope"); ok {
		t.Error("Expected no session for an unknown ID")
	}
}

func TestRegistry_Delete(t *testing.T) {
	reg, err := session.NewRegistry(time.Minute)
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	defer reg.Close()

	sess := reg.Create()
	reg.Delete(sess.ID)

	if _, ok := reg.Get(sess.ID); ok {
		t.Error("Expected the session to be gone after Delete")
	}
}

func TestRegistry_TTLExpiry(t *testing.T) {
	reg, err := session.NewRegistry(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	defer reg.Close()

	sess := reg.Create()

	time.Sleep(100 * time.Millisecond)

	if _, ok := reg.Get(sess.ID); ok {
		t.Error("Expected the session to expire after its TTL")
	}
}

func TestSessions_AreIndependent(t *testing.T) {
	reg, err := session.NewRegistry(time.Minute)
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	defer reg.Close()

	a := reg.Create()
	b := reg.Create()
	if a.ID == b.ID {
		t.Fatal("Expected distinct session IDs")
	}
	if a.Profile == b.Profile {
		t.Error("Expected sessions to own separate profiles")
	}
}
