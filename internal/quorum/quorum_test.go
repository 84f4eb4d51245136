package quorum

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dynakv/internal/storage"
	"dynakv/internal/version"
)

func TestWrite_CountsAcks(t *testing.T) {
	replicas := []string{"n1", "n2", "n3"}
	fn := func(_ context.Context, id string) bool {
		return id != "n2"
	}

	acks := Write(context.Background(), replicas, 1, true, fn)
	if acks != 2 {
		t.Errorf("acks=%d, want 2", acks)
	}
}

func TestWrite_EmptyReplicaSet(t *testing.T) {
	called := false
	acks := Write(context.Background(), nil, 1, true, func(context.Context, string) bool {
		called = true
		return true
	})
	if acks != 0 || called {
		t.Errorf("acks=%d called=%v, want 0 and no calls", acks, called)
	}
}

func TestWrite_WaitAllInvokesEveryReplica(t *testing.T) {
	var calls int32
	replicas := []string{"n1", "n2", "n3", "n4", "n5"}

	acks := Write(context.Background(), replicas, 1, true, func(_ context.Context, _ string) bool {
		atomic.AddInt32(&calls, 1)
		return true
	})

	if acks != len(replicas) {
		t.Errorf("acks=%d, want %d", acks, len(replicas))
	}
	if got := atomic.LoadInt32(&calls); got != int32(len(replicas)) {
		t.Errorf("calls=%d, want %d", got, len(replicas))
	}
}

func TestWrite_EarlyReturnStillRunsStragglers(t *testing.T) {
	var calls int32
	slowDone := make(chan struct{})

	fn := func(_ context.Context, id string) bool {
		atomic.AddInt32(&calls, 1)
		if id == "slow" {
			time.Sleep(100 * time.Millisecond)
			close(slowDone)
		}
		return true
	}

	start := time.Now()
	acks := Write(context.Background(), []string{"fast1", "fast2", "slow"}, 2, false, fn)
	if acks < 2 {
		t.Errorf("acks=%d, want >= 2", acks)
	}
	if time.Since(start) > 50*time.Millisecond {
		t.Error("early return waited for the slow replica")
	}

	select {
	case <-slowDone:
	case <-time.After(time.Second):
		t.Fatal("straggler never completed")
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls=%d, want 3", got)
	}
}

func TestRead_CollectsAllReplicasInOrder(t *testing.T) {
	replicas := []string{"n1", "n2", "n3"}
	entries := map[string]storage.Entry{
		"n1": {Value: []byte("a"), Version: version.Version{TimestampUS: 1, WriterID: "n1"}},
		"n3": {Value: []byte("c"), Version: version.Version{TimestampUS: 3, WriterID: "n3"}},
	}

	results := Read(context.Background(), replicas, func(_ context.Context, id string) (storage.Entry, bool) {
		e, ok := entries[id]
		return e, ok
	})

	if len(results) != 3 {
		t.Fatalf("len(results)=%d", len(results))
	}
	for i, id := range replicas {
		if results[i].ReplicaID != id {
			t.Errorf("results[%d].ReplicaID=%s, want %s", i, results[i].ReplicaID, id)
		}
	}
	if !results[0].Found || results[1].Found || !results[2].Found {
		t.Errorf("found flags wrong: %+v", results)
	}
	if string(results[2].Entry.Value) != "c" {
		t.Errorf("n3 entry=%q", results[2].Entry.Value)
	}
}

func TestRead_ParallelFanOut(t *testing.T) {
	// Each read sleeps; total wall time must be far below the serial sum.
	const n = 8
	replicas := make([]string, n)
	for i := range replicas {
		replicas[i] = string(rune('a' + i))
	}

	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0

	start := time.Now()
	Read(context.Background(), replicas, func(_ context.Context, _ string) (storage.Entry, bool) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return storage.Entry{}, false
	})

	if elapsed := time.Since(start); elapsed > n*10*time.Millisecond/2 {
		t.Errorf("fan-out looks serial: took %v", elapsed)
	}
	if maxInFlight < 2 {
		t.Errorf("maxInFlight=%d, expected parallel dispatch", maxInFlight)
	}
}
