package node

import (
	"errors"
	"testing"

	"dynakv/internal/cluster"
)

func TestClientManager_UnknownNode(t *testing.T) {
	view := cluster.NewView(10)
	cm := NewClientManager(view)

	_, err := cm.Get("ghost")
	if !errors.Is(err, ErrUnknownNode) {
		t.Errorf("err=%v, want ErrUnknownNode", err)
	}
}

func TestClientManager_CachesClients(t *testing.T) {
	view := cluster.NewView(10)
	view.Add("n2", "localhost:50052")
	cm := NewClientManager(view)
	defer cm.Close()

	c1, err := cm.Get("n2")
	if err != nil {
		t.Fatalf("first Get: %v", err)
	}
	c2, err := cm.Get("n2")
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if c1 != c2 {
		t.Error("expected the cached client on the second lookup")
	}
}

func TestClientManager_SurvivesMemberRemoval(t *testing.T) {
	view := cluster.NewView(10)
	view.Add("n2", "localhost:50052")
	cm := NewClientManager(view)
	defer cm.Close()

	if _, err := cm.Get("n2"); err != nil {
		t.Fatalf("Get: %v", err)
	}

	// Handles are never evicted: a cached client outlives membership.
	view.Remove("n2")
	if _, err := cm.Get("n2"); err != nil {
		t.Errorf("cached handle gone after member removal: %v", err)
	}
}
